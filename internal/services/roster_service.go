// internal/services/roster_service.go
// Roster management: adding, renaming, and presence-toggling players
// belonging to a session.

package services

import (
	"context"
	"fmt"
	"time"

	"badminton-court-engine/internal/models"
	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/utils"
)

// RosterService handles roster CRUD for a session
type RosterService struct {
	repos     *repositories.Container
	broadcast *BroadcastService
}

// NewRosterService creates a new roster service
func NewRosterService(repos *repositories.Container, broadcast *BroadcastService) *RosterService {
	return &RosterService{repos: repos, broadcast: broadcast}
}

// notifyRosterChanged re-reads and broadcasts the current roster after a mutation
func (s *RosterService) notifyRosterChanged(ctx context.Context, sessionID string) {
	roster, err := s.repos.Player.ListBySessionID(ctx, sessionID)
	if err != nil {
		return
	}
	s.broadcast.RosterUpdated(sessionID, roster)
}

// AddPlayer adds a new roster entry to a session
func (s *RosterService) AddPlayer(ctx context.Context, sessionID, name string) (*models.Player, error) {
	name = utils.SanitizeString(name)
	if err := utils.ValidatePlayerName(name); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:        utils.GenerateUUID(),
		SessionID: sessionID,
		Name:      name,
		IsPresent: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repos.Player.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	s.notifyRosterChanged(ctx, sessionID)
	return player, nil
}

// List retrieves the full roster for a session
func (s *RosterService) List(ctx context.Context, sessionID string) ([]*models.Player, error) {
	return s.repos.Player.ListBySessionID(ctx, sessionID)
}

// Rename updates a roster entry's display name
func (s *RosterService) Rename(ctx context.Context, playerID, newName string) (*models.Player, error) {
	newName = utils.SanitizeString(newName)
	if err := utils.ValidatePlayerName(newName); err != nil {
		return nil, err
	}

	player, err := s.repos.Player.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Name = newName
	player.UpdatedAt = time.Now()

	if err := s.repos.Player.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to rename player: %w", err)
	}

	s.notifyRosterChanged(ctx, player.SessionID)
	return player, nil
}

// SetPresence marks a player present or absent for the next generated round
func (s *RosterService) SetPresence(ctx context.Context, playerID string, present bool) error {
	player, err := s.repos.Player.GetByID(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.repos.Player.SetPresence(ctx, playerID, present); err != nil {
		return err
	}

	s.notifyRosterChanged(ctx, player.SessionID)
	return nil
}

// Remove deletes a roster entry entirely
func (s *RosterService) Remove(ctx context.Context, playerID string) error {
	player, err := s.repos.Player.GetByID(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.repos.Player.Delete(ctx, playerID); err != nil {
		return err
	}

	s.notifyRosterChanged(ctx, player.SessionID)
	return nil
}
