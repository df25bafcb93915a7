package middleware

import (
	"net/http"

	"codabs/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the authenticated user
// holds at least one of the given roles. Must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextUser)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		usr, ok := val.(*models.User)
		if !ok || !usr.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. You do not have the required role."})
			return
		}
		c.Next()
	}
}
