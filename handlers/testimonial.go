package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler exposes testimonial endpoints.
type TestimonialHandler struct {
	Service content.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler.
func NewTestimonialHandler(svc content.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{Service: svc}
}

// CreateTestimonialHandler handles POST /api/testimonial.
func (h *TestimonialHandler) CreateTestimonialHandler(c *gin.Context) {
	var in content.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	t, err := h.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "testimonial": t})
}

// GetTestimonialsHandler handles GET /api/testimonial.
func (h *TestimonialHandler) GetTestimonialsHandler(c *gin.Context) {
	ts, err := h.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "testimonials": ts})
}

// UpdateTestimonialHandler handles PUT /api/testimonial/:id.
func (h *TestimonialHandler) UpdateTestimonialHandler(c *gin.Context) {
	var in content.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	t, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "testimonial": t})
}

// DeleteTestimonialHandler handles DELETE /api/testimonial/:id.
func (h *TestimonialHandler) DeleteTestimonialHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Testimonial deleted"})
}
