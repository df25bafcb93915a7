package middleware

import (
	"codabs/services/analytics"

	"github.com/gin-gonic/gin"
)

// TrackVisit records a visit of the given type before the handler runs. For
// content types the :id route parameter becomes the reference. Recording is
// fire-and-forget so a slow analytics write never delays the page.
func TrackVisit(svc analytics.AnalyticsService, visitType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		referenceID := c.Param("id")
		ip := getClientIP(c)
		userAgent := c.GetHeader("User-Agent")

		go svc.Track(visitType, referenceID, ip, userAgent)

		c.Next()
	}
}
