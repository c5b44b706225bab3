// internal/api/admin_handlers.go
// Admin-only HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGetPlatformStats retrieves platform-wide statistics
func HandleGetPlatformStats(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := analyticsService.GetPlatformStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"statistics": stats,
		})
	}
}

// HandleListAllSessions lists every session across all organizers
func HandleListAllSessions(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		filter := repositories.ListFilter{
			Page:   page,
			Limit:  limit,
			Search: c.Query("search"),
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
			},
		})
	}
}
