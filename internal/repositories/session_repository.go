// internal/repositories/session_repository.go
// Session data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"badminton-court-engine/internal/models"
)

// SessionRepository handles session data access
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (
			id, organizer_id, name, number_of_courts, engine_variant,
			cost_weights, rng_seed, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.OrganizerID,
		session.Name,
		session.NumberOfCourts,
		session.EngineVariant,
		session.CostWeights,
		session.RNGSeed,
		session.CreatedAt,
		session.UpdatedAt,
	)

	return err
}

// CreateWithTx creates a session within a transaction
func (r *SessionRepository) CreateWithTx(tx *sql.Tx, session *models.Session) error {
	query := `
		INSERT INTO sessions (
			id, organizer_id, name, number_of_courts, engine_variant,
			cost_weights, rng_seed, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(context.Background(), query,
		session.ID,
		session.OrganizerID,
		session.Name,
		session.NumberOfCourts,
		session.EngineVariant,
		session.CostWeights,
		session.RNGSeed,
		session.CreatedAt,
		session.UpdatedAt,
	)

	return err
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, organizer_id, name, number_of_courts, engine_variant,
			cost_weights, rng_seed, created_at, updated_at
		FROM sessions
		WHERE id = ?
	`

	var session models.Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.OrganizerID,
		&session.Name,
		&session.NumberOfCourts,
		&session.EngineVariant,
		&session.CostWeights,
		&session.RNGSeed,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found")
	}

	return &session, err
}

// ListFilter narrows a session listing
type ListFilter struct {
	Page        int
	Limit       int
	OrganizerID string
	Search      string
}

// List retrieves sessions matching the filter
func (r *SessionRepository) List(ctx context.Context, filter ListFilter) ([]*models.Session, int, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)

	if filter.OrganizerID != "" {
		conditions = append(conditions, "organizer_id = ?")
		args = append(args, filter.OrganizerID)
	}
	if filter.Search != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM sessions %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT id, organizer_id, name, number_of_courts, engine_variant,
			cost_weights, rng_seed, created_at, updated_at
		FROM sessions
		%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := make([]*models.Session, 0)
	for rows.Next() {
		var s models.Session
		err := rows.Scan(
			&s.ID, &s.OrganizerID, &s.Name, &s.NumberOfCourts, &s.EngineVariant,
			&s.CostWeights, &s.RNGSeed, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, &s)
	}

	return sessions, total, nil
}

// Update updates session configuration
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	query := `
		UPDATE sessions SET
			name = ?, number_of_courts = ?, engine_variant = ?,
			cost_weights = ?, rng_seed = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		session.Name,
		session.NumberOfCourts,
		session.EngineVariant,
		session.CostWeights,
		session.RNGSeed,
		session.UpdatedAt,
		session.ID,
	)

	return err
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// IsOwnedBy checks whether the session belongs to the given organizer
func (r *SessionRepository) IsOwnedBy(ctx context.Context, sessionID, organizerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sessions WHERE id = ? AND organizer_id = ?)`
	var owned bool
	err := r.db.QueryRowContext(ctx, query, sessionID, organizerID).Scan(&owned)
	return owned, err
}
