// internal/api/auth_handlers.go
// Authentication-related HTTP handlers

package api

import (
	"net/http"

	"badminton-court-engine/internal/models"
	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleRegister handles organizer registration
func HandleRegister(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		user, tokens, err := authService.Register(c.Request.Context(), req)
		if err != nil {
			if err == services.ErrEmailAlreadyExists {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user": user,
			"auth": tokens,
		})
	}
}

// HandleLogin handles organizer login
func HandleLogin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		user, tokens, err := authService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if err == services.ErrInvalidCredentials {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": user,
			"auth": tokens,
		})
	}
}

// HandleLogout handles organizer logout
func HandleLogout(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get refresh token from request
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		c.ShouldBindJSON(&req)

		// Invalidate refresh token
		if err := authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
			c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// HandleRefreshToken handles token refresh
func HandleRefreshToken(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		tokens, err := authService.RefreshToken(c.Request.Context(), req.RefreshToken)
		if err != nil {
			if err == services.ErrInvalidToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"auth": tokens,
		})
	}
}

// HandleChangePassword handles password change for authenticated organizers
func HandleChangePassword(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req struct {
			CurrentPassword string `json:"current_password" binding:"required"`
			NewPassword     string `json:"new_password" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if err := authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			if err == services.ErrInvalidCredentials {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
	}
}
