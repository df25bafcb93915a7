package handlers

import (
	"net/http"

	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes category management endpoints.
type CategoryHandler struct {
	Service content.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc content.CategoryService) *CategoryHandler {
	return &CategoryHandler{Service: svc}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCategoryHandler handles POST /api/category.
func (h *CategoryHandler) CreateCategoryHandler(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	cat, err := h.Service.Create(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "category": cat})
}

// GetCategoriesHandler handles GET /api/category.
func (h *CategoryHandler) GetCategoriesHandler(c *gin.Context) {
	cats, err := h.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": cats})
}

// GetCategoryHandler handles GET /api/category/:id.
func (h *CategoryHandler) GetCategoryHandler(c *gin.Context) {
	cat, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat})
}

// UpdateCategoryHandler handles PUT /api/category/:id.
func (h *CategoryHandler) UpdateCategoryHandler(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	cat, err := h.Service.Update(c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat})
}

// DeleteCategoryHandler handles DELETE /api/category/:id.
func (h *CategoryHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
