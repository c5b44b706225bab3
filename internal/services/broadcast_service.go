// internal/services/broadcast_service.go
// Live session updates, pushed to the websocket hub watching a session.

package services

import (
	"log"
)

// Broadcaster is the subset of *websocket.Hub this service needs. Declared
// here rather than imported directly, since internal/websocket itself
// depends on this package for Container.
type Broadcaster interface {
	BroadcastSessionUpdate(sessionID string, updateType string, data interface{})
}

// BroadcastService pushes round/winner/history events to live viewers
type BroadcastService struct {
	hub    Broadcaster
	logger *log.Logger
}

// NewBroadcastService creates a new broadcast service. The hub is attached
// later via SetHub once internal/server creates it, breaking the services <->
// websocket import cycle.
func NewBroadcastService(logger *log.Logger) *BroadcastService {
	return &BroadcastService{logger: logger}
}

// SetHub attaches the websocket hub once it exists
func (s *BroadcastService) SetHub(hub Broadcaster) {
	s.hub = hub
}

// RoundGenerated announces a newly generated round to session viewers
func (s *BroadcastService) RoundGenerated(sessionID string, round interface{}) {
	if s.hub == nil {
		s.logger.Printf("round generated for session %s (no live viewers attached)", sessionID)
		return
	}
	s.hub.BroadcastSessionUpdate(sessionID, "round_generated", round)
}

// WinnerUpdated announces a winner change for a court
func (s *BroadcastService) WinnerUpdated(sessionID string, round interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastSessionUpdate(sessionID, "winner_updated", round)
}

// HistoryReset announces that a session's history state changed outside
// round generation: counters reset or loaded from a snapshot, or the
// current-session records cleared
func (s *BroadcastService) HistoryReset(sessionID string) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastSessionUpdate(sessionID, "history_reset", nil)
}

// RosterUpdated announces a roster change
func (s *BroadcastService) RosterUpdated(sessionID string, roster interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastSessionUpdate(sessionID, "roster_updated", roster)
}
