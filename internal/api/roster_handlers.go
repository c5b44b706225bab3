// internal/api/roster_handlers.go
// Roster management HTTP handlers: adding, renaming, presence-toggling and
// removing the players that belong to a session.

package api

import (
	"net/http"

	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleAddPlayer adds a new roster entry to a session
func HandleAddPlayer(rosterService *services.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		player, err := rosterService.AddPlayer(c.Request.Context(), sessionID, req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add player", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"player": player,
		})
	}
}

// HandleUpdatePlayer renames a player and/or toggles their presence
func HandleUpdatePlayer(rosterService *services.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID := c.Param("playerId")

		var req struct {
			Name      *string `json:"name"`
			IsPresent *bool   `json:"is_present"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		var player interface{}
		if req.Name != nil {
			p, err := rosterService.Rename(c.Request.Context(), playerID, *req.Name)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to rename player", "details": err.Error()})
				return
			}
			player = p
		}

		if req.IsPresent != nil {
			if err := rosterService.SetPresence(c.Request.Context(), playerID, *req.IsPresent); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update presence"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"player": player,
		})
	}
}

// HandleRemovePlayer deletes a roster entry entirely
func HandleRemovePlayer(rosterService *services.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID := c.Param("playerId")

		if err := rosterService.Remove(c.Request.Context(), playerID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove player"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Player removed successfully"})
	}
}
