package handlers

import (
	"net/http"

	"codabs/models"
	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// SubcategoryHandler exposes subcategory management endpoints.
type SubcategoryHandler struct {
	Service content.SubcategoryService
}

// NewSubcategoryHandler creates a SubcategoryHandler.
func NewSubcategoryHandler(svc content.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{Service: svc}
}

type subcategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}

// CreateSubcategoryHandler handles POST /api/subcategory.
func (h *SubcategoryHandler) CreateSubcategoryHandler(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	sub, err := h.Service.Create(req.Name, req.Description, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "subcategory": sub})
}

// GetSubcategoriesHandler handles GET /api/subcategory. An optional category
// query parameter restricts the listing to one category.
func (h *SubcategoryHandler) GetSubcategoriesHandler(c *gin.Context) {
	var (
		subs []models.Subcategory
		err  error
	)
	if categoryID := c.Query("category"); categoryID != "" {
		subs, err = h.Service.GetByCategory(categoryID)
	} else {
		subs, err = h.Service.GetAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "subcategories": subs})
}

// GetSubcategoryHandler handles GET /api/subcategory/:id.
func (h *SubcategoryHandler) GetSubcategoryHandler(c *gin.Context) {
	sub, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "subcategory": sub})
}

// UpdateSubcategoryHandler handles PUT /api/subcategory/:id.
func (h *SubcategoryHandler) UpdateSubcategoryHandler(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	sub, err := h.Service.Update(c.Param("id"), map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"categoryId":  req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "subcategory": sub})
}

// DeleteSubcategoryHandler handles DELETE /api/subcategory/:id.
func (h *SubcategoryHandler) DeleteSubcategoryHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory deleted"})
}
