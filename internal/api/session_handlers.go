// internal/api/session_handlers.go
// Session management HTTP handlers: a session is a named roster plus the
// engine configuration applied to it.

package api

import (
	"net/http"
	"strconv"

	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleCreateSession handles session creation
func HandleCreateSession(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		organizerID := c.GetString("user_id")

		var req services.CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
			return
		}

		session, err := sessionService.Create(c.Request.Context(), organizerID, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session", "details": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"session": session,
		})
	}
}

// HandleGetSession retrieves a session's configuration and roster
func HandleGetSession(sessionService *services.SessionService, rosterService *services.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		session, err := sessionService.GetByID(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		roster, err := rosterService.List(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve roster"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session": session,
			"roster":  roster,
		})
	}
}

// HandleListSessions lists sessions belonging to the calling organizer
func HandleListSessions(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		filter := repositories.ListFilter{
			Page:        page,
			Limit:       limit,
			OrganizerID: c.GetString("user_id"),
			Search:      c.Query("search"),
		}

		sessions, total, err := sessionService.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"sessions": sessions,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
				"pages": (total + limit - 1) / limit,
			},
		})
	}
}

// HandleDeleteSession removes a session along with its engine state and archive
func HandleDeleteSession(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		if err := sessionService.Delete(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
	}
}
