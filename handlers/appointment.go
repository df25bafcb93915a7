package handlers

import (
	"net/http"

	"codabs/models"
	"codabs/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler handles POST /api/appointment.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment request sent successfully",
		"appointment": appt,
	})
}

// ListAppointmentsHandler handles GET /api/appointment.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	var q models.AppointmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid query: " + err.Error()})
		return
	}

	page, err := h.Service.List(q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"total":        page.Total,
		"page":         page.Page,
		"totalPages":   page.TotalPages,
		"appointments": page.Appointments,
	})
}

// AcceptAppointmentHandler handles PUT /api/appointment/:id/accept.
func (h *AppointmentHandler) AcceptAppointmentHandler(c *gin.Context) {
	appt, err := h.Service.Accept(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Appointment accepted", "appointment": appt})
}

// RejectAppointmentHandler handles PUT /api/appointment/:id/reject.
func (h *AppointmentHandler) RejectAppointmentHandler(c *gin.Context) {
	var req struct {
		ReasonForRejection string `json:"reasonForRejection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Service.Reject(c.Param("id"), req.ReasonForRejection)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// GetAvailabilityHandler handles GET /api/appointment/availability.
func (h *AppointmentHandler) GetAvailabilityHandler(c *gin.Context) {
	available, err := h.Service.GetAvailability()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "isAvailable": available})
}

// ToggleAvailabilityHandler handles PUT /api/appointment/availability/toggle.
func (h *AppointmentHandler) ToggleAvailabilityHandler(c *gin.Context) {
	available, err := h.Service.ToggleAvailability()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Availability updated",
		"isAvailable": available,
	})
}
