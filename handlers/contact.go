package handlers

import (
	"net/http"

	"codabs/models"
	"codabs/services/contact"

	"github.com/gin-gonic/gin"
)

// ContactHandler exposes the public contact form endpoint.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitContactHandler handles POST /api/contact.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.Submit(msg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}
