// internal/api/user_handlers.go
// Organizer profile HTTP handlers

package api

import (
	"net/http"

	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGetCurrentUser retrieves the current organizer's profile
func HandleGetCurrentUser(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		user, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": user,
		})
	}
}

// HandleUpdateProfile updates the organizer's display name
func HandleUpdateProfile(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req struct {
			FullName string `json:"full_name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		user, err := userService.UpdateProfile(c.Request.Context(), userID, req.FullName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": user,
		})
	}
}
