package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DayLocker serializes the read-decide-write sequence for one calendar day so
// that two concurrent requests cannot both pass the admission check on stale
// reads.
type DayLocker interface {
	// Acquire takes the lock for the given day, blocking briefly if another
	// request holds it.
	Acquire(day time.Time) error
	// Release frees the lock for the given day.
	Release(day time.Time)
}

// RedisDayLocker implements DayLocker with a redis SETNX advisory lock.
type RedisDayLocker struct {
	Client *redis.Client
}

const (
	lockTTL      = 5 * time.Second
	lockWait     = 2 * time.Second
	lockInterval = 50 * time.Millisecond
)

func dayLockKey(day time.Time) string {
	start, _ := DayBounds(day)
	return "appointment:daylock:" + start.Format("2006-01-02")
}

// Acquire takes the per-day lock, retrying until lockWait elapses.
func (l *RedisDayLocker) Acquire(day time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()

	key := dayLockKey(day)
	for {
		ok, err := l.Client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire day lock %s: %w", key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out acquiring day lock %s", key)
		case <-time.After(lockInterval):
		}
	}
}

// Release frees the per-day lock.
func (l *RedisDayLocker) Release(day time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	l.Client.Del(ctx, dayLockKey(day))
}
