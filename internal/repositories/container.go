// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"

	"badminton-court-engine/internal/database"
)

// Container holds all repository instances
type Container struct {
	User         *UserRepository
	Session      *SessionRepository
	Player       *PlayerRepository
	RoundArchive *RoundArchiveRepository
	State        *StateRepository
	db           *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		User:         NewUserRepository(conn.MySQL),
		Session:      NewSessionRepository(conn.MySQL),
		Player:       NewPlayerRepository(conn.MySQL),
		RoundArchive: NewRoundArchiveRepository(conn.MongoDB),
		State:        NewStateRepository(conn.Redis),
		db:           conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
