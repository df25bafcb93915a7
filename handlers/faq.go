package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// FAQHandler exposes FAQ endpoints.
type FAQHandler struct {
	Service content.FAQService
}

// NewFAQHandler creates an FAQHandler.
func NewFAQHandler(svc content.FAQService) *FAQHandler {
	return &FAQHandler{Service: svc}
}

// CreateFAQHandler handles POST /api/faq.
func (h *FAQHandler) CreateFAQHandler(c *gin.Context) {
	var in content.FAQInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	faq, err := h.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "faq": faq})
}

// GetFAQsHandler handles GET /api/faq. Public callers only see visible entries;
// staff pass all=true to include hidden ones.
func (h *FAQHandler) GetFAQsHandler(c *gin.Context) {
	visibleOnly := c.Query("all") != "true"
	faqs, err := h.Service.GetAll(visibleOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "faqs": faqs})
}

// UpdateFAQHandler handles PUT /api/faq/:id.
func (h *FAQHandler) UpdateFAQHandler(c *gin.Context) {
	var in content.FAQInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	faq, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "faq": faq})
}

// DeleteFAQHandler handles DELETE /api/faq/:id.
func (h *FAQHandler) DeleteFAQHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "FAQ deleted"})
}
