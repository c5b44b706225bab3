// internal/api/round_handlers.go
// Round generation, winner recording and history HTTP handlers: the thin
// HTTP host around the single engine.Engine instance backing each session.

package api

import (
	"net/http"

	"badminton-court-engine/internal/engine"
	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// manualPinRequest mirrors engine.ManualPin over the wire
type manualPinRequest struct {
	Players []engine.Player `json:"players"`
}

// HandleGenerateRound generates the next round for a session
func HandleGenerateRound(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		var req struct {
			ManualPin     *manualPinRequest `json:"manual_pin"`
			ForceBenchIDs []string          `json:"force_bench_ids"`
		}
		// Body is optional: an empty request generates with no manual pin or bench
		c.ShouldBindJSON(&req)

		var manualPin *engine.ManualPin
		if req.ManualPin != nil {
			manualPin = &engine.ManualPin{Players: req.ManualPin.Players}
		}

		var forceBench map[string]bool
		if len(req.ForceBenchIDs) > 0 {
			forceBench = make(map[string]bool, len(req.ForceBenchIDs))
			for _, id := range req.ForceBenchIDs {
				forceBench[id] = true
			}
		}

		round, err := sessionService.GenerateRound(c.Request.Context(), sessionID, manualPin, forceBench)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to generate round", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"round": round,
		})
	}
}

// HandleGetCurrentRound retrieves the last generated round for a session
func HandleGetCurrentRound(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		round, err := sessionService.CurrentRound(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"round": round,
		})
	}
}

// HandleUpdateWinner records a court's winner on the current round
func HandleUpdateWinner(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		var req struct {
			CourtNumber int `json:"court_number" binding:"required"`
			Winner      int `json:"winner"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		round, err := sessionService.UpdateWinner(c.Request.Context(), sessionID, req.CourtNumber, engine.Winner(req.Winner))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update winner", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"round": round,
		})
	}
}

// HandleReverseWinner undoes a previously recorded win/loss for one court
func HandleReverseWinner(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		var req struct {
			CourtNumber int `json:"court_number" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if err := sessionService.ReverseWinForCourt(c.Request.Context(), sessionID, req.CourtNumber); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to reverse winner", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Winner reversed successfully"})
	}
}

// HandleGetWinCounts retrieves cumulative win counts for a session
func HandleGetWinCounts(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		history, err := sessionService.GetHistory(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"wins":   history.Win,
			"losses": history.Loss,
		})
	}
}

// HandleGetBenchCounts retrieves cumulative bench counts for a session
func HandleGetBenchCounts(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		history, err := sessionService.GetHistory(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"bench": history.Bench,
		})
	}
}

// HandleResetHistory clears every history counter for a session
func HandleResetHistory(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		if err := sessionService.ResetHistory(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "History reset successfully"})
	}
}

// HandleClearCurrentSession clears current-round bookkeeping, keeping history
func HandleClearCurrentSession(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		if err := sessionService.ClearCurrentSession(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear current session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Current session cleared successfully"})
	}
}

// HandleGetState returns the raw persisted snapshot for a session
func HandleGetState(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		snapshot, err := sessionService.GetState(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleLoadState overwrites a session's history counters from a snapshot
func HandleLoadState(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		var snapshot engine.StateSnapshot
		if err := c.ShouldBindJSON(&snapshot); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if err := sessionService.LoadState(c.Request.Context(), sessionID, snapshot); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "State loaded successfully"})
	}
}

// HandleGetRoundArchive retrieves the archived rounds for a session
func HandleGetRoundArchive(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		entries, err := sessionService.GetRoundArchive(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve round archive"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rounds": entries,
		})
	}
}
