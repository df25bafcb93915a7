package handlers

import (
	"net/http"

	"codabs/services/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes the dashboard analytics endpoint.
type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

// SummaryHandler handles GET /api/analytics/summary.
func (h *AnalyticsHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": summary})
}
