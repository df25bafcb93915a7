package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "codabs/database/repository/user"
	"codabs/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// JWTAuthMiddleware authenticates staff requests. It validates the bearer
// token, checks the token hash against the redis auth cache first and falls
// back to the user store, and sets the authenticated user in the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)

		// Cached hash lets us skip the user-store lookup for the hot path.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		userID, cacheErr := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+tokenHash).Result()
		cancel()

		if cacheErr != nil || userID == "" {
			usr, err := users.GetByTokenHash(tokenHash)
			if err != nil || usr == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
				return
			}
			userID = usr.ID
			c.Set(ContextUser, usr)
		} else {
			usr, err := users.GetByID(userID)
			if err != nil || usr == nil || usr.TokenHash != tokenHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
				return
			}
			c.Set(ContextUser, usr)
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
