// internal/repositories/player_repository.go
// Roster entry data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"badminton-court-engine/internal/models"
)

// PlayerRepository handles roster data access
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a new roster entry
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (
			id, session_id, name, is_present, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		player.ID,
		player.SessionID,
		player.Name,
		player.IsPresent,
		player.CreatedAt,
		player.UpdatedAt,
	)

	return err
}

// GetByID retrieves a roster entry by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	query := `
		SELECT id, session_id, name, is_present, created_at, updated_at
		FROM players
		WHERE id = ?
	`

	var p models.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SessionID, &p.Name, &p.IsPresent, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found")
	}

	return &p, err
}

// ListBySessionID retrieves the full roster for a session
func (r *PlayerRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.Player, error) {
	query := `
		SELECT id, session_id, name, is_present, created_at, updated_at
		FROM players
		WHERE session_id = ?
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Name, &p.IsPresent, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}

	return players, nil
}

// Update updates a roster entry's name
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET name = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, player.Name, player.UpdatedAt, player.ID)
	return err
}

// SetPresence flips a roster entry's present/absent flag
func (r *PlayerRepository) SetPresence(ctx context.Context, id string, present bool) error {
	query := `UPDATE players SET is_present = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, present, id)
	return err
}

// Delete removes a roster entry
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM players WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// CountBySessionID counts roster entries for a session
func (r *PlayerRepository) CountBySessionID(ctx context.Context, sessionID string) (int, error) {
	query := `SELECT COUNT(*) FROM players WHERE session_id = ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&count)
	return count, err
}
