package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes construction service endpoints.
type ServiceHandler struct {
	Service content.ServiceService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc content.ServiceService) *ServiceHandler {
	return &ServiceHandler{Service: svc}
}

// CreateServiceHandler handles POST /api/service.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var in content.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "service": svc})
}

// GetServicesHandler handles GET /api/service.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	svcs, err := h.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "services": svcs})
}

// GetServiceHandler handles GET /api/service/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": svc})
}

// UpdateServiceHandler handles PUT /api/service/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var in content.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "service": svc})
}

// DeleteServiceHandler handles DELETE /api/service/:id.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deleted"})
}
