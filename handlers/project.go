package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes project showcase endpoints.
type ProjectHandler struct {
	Service content.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc content.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: svc}
}

// CreateProjectHandler handles POST /api/project.
func (h *ProjectHandler) CreateProjectHandler(c *gin.Context) {
	var in content.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	proj, err := h.Service.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "project": proj})
}

// ListProjectsHandler handles GET /api/project.
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	var q content.ProjectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid query: " + err.Error()})
		return
	}

	projects, total, err := h.Service.List(q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "total": total, "projects": projects})
}

// GetProjectHandler handles GET /api/project/:id.
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	proj, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": proj})
}

// UpdateProjectHandler handles PUT /api/project/:id.
func (h *ProjectHandler) UpdateProjectHandler(c *gin.Context) {
	var in content.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	proj, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": proj})
}

// DeleteProjectHandler handles DELETE /api/project/:id.
func (h *ProjectHandler) DeleteProjectHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}
