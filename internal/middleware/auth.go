// internal/middleware/auth.go
// Authentication middleware validates JWT tokens and sets user context

package middleware

import (
	"net/http"
	"strings"

	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates that a request has a valid JWT token
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		userID, role, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Set("authenticated", true)

		c.Next()
	}
}

// OptionalAuth checks for authentication but doesn't require it
func OptionalAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set("authenticated", false)
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if userID, role, err := authService.ValidateToken(parts[1]); err == nil {
				c.Set("user_id", userID)
				c.Set("user_role", role)
				c.Set("authenticated", true)
			}
		}

		c.Next()
	}
}

// RequireRole ensures the user has a specific role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSessionOwner ensures the user owns the session named by the :id param
func RequireSessionOwner(services *services.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		sessionID := c.Param("id")

		isOwner, err := services.Session.IsOwner(c.Request.Context(), sessionID, userID.(string))
		if err != nil || !isOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
