package utils

import (
	"context"
	"time"

	"codabs/database"
)

// HealthCheck pings the backing stores and reports which are reachable.
func HealthCheck() map[string]string {
	status := map[string]string{"mongo": "ok", "redis": "ok"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		status["mongo"] = err.Error()
	}
	if _, err := GetCacheClient().Ping(ctx).Result(); err != nil {
		status["redis"] = err.Error()
	}
	return status
}
