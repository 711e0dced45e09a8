package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"mealmate/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextUserKey is where the authenticated user id is stored in the gin
// context.
const ContextUserKey = "userID"

// JWTAuthMiddleware validates JWT tokens and extracts user information
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserKey, claims.UserID) // Store userID in context
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
