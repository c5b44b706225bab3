// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"badminton-court-engine/internal/config"
	"badminton-court-engine/internal/database"
	"badminton-court-engine/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth      *AuthService
	User      *UserService
	Session   *SessionService
	Roster    *RosterService
	Broadcast *BroadcastService
	Cache     *CacheService
	Analytics *AnalyticsService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	repos := repositories.NewContainer(db)

	cache := NewCacheService(db.Redis, logger)
	broadcast := NewBroadcastService(logger)

	auth := NewAuthService(repos.User, cfg.Auth, cache, logger)
	user := NewUserService(repos.User)
	session := NewSessionService(repos, cache, broadcast, cfg.Engine, logger)
	roster := NewRosterService(repos, broadcast)
	analytics := NewAnalyticsService(db.MongoDB, cache, logger)

	return &Container{
		Auth:      auth,
		User:      user,
		Session:   session,
		Roster:    roster,
		Broadcast: broadcast,
		Cache:     cache,
		Analytics: analytics,
	}
}

// Common errors used across services
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidRoster      = errors.New("roster is invalid for this operation")
)
