package handlers

import (
	"net/http"

	"codabs/middleware"
	"codabs/services/content"

	"github.com/gin-gonic/gin"
)

// BlogHandler exposes blog endpoints.
type BlogHandler struct {
	Service content.BlogService
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc content.BlogService) *BlogHandler {
	return &BlogHandler{Service: svc}
}

// CreateBlogHandler handles POST /api/blog. The authenticated staff member
// becomes the author.
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	var in content.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	authorID := c.GetString(middleware.ContextUserID)
	blog, err := h.Service.Create(authorID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "blog": blog})
}

// ListBlogsHandler handles GET /api/blog.
func (h *BlogHandler) ListBlogsHandler(c *gin.Context) {
	var q content.BlogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid query: " + err.Error()})
		return
	}

	blogs, total, err := h.Service.List(q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "total": total, "blogs": blogs})
}

// GetBlogHandler handles GET /api/blog/:id.
func (h *BlogHandler) GetBlogHandler(c *gin.Context) {
	blog, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// UpdateBlogHandler handles PUT /api/blog/:id.
func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	var in content.BlogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	blog, err := h.Service.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// DeleteBlogHandler handles DELETE /api/blog/:id.
func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted"})
}
