package handlers

import (
	"net/http"

	"codabs/middleware"
	"codabs/models"
	"codabs/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes staff account and session endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Service.Register(reg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered", "user": usr})
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": resp.Token, "user": resp.User})
}

// LogoutHandler handles POST /api/auth/logout. It revokes the caller's token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Service.RevokeToken(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// ResetPasswordHandler handles POST /api/auth/reset-password.
func (h *UserHandler) ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ResetPassword(req.Email, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset"})
}

// GetUsersHandler handles GET /api/users.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GetUserHandler handles GET /api/users/:id.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	usr, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}

// UpdateUserHandler handles PUT /api/users/:id.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Service.Update(c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": usr})
}

// DeleteUserHandler handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
