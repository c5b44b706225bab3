// internal/models/player.go
// Roster entry persisted in MySQL. Mirrors engine.Player plus the
// bookkeeping fields the engine package itself has no business knowing
// about (ownership, timestamps).

package models

import "time"

// Player represents one persisted roster entry belonging to a Session.
type Player struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Name      string    `json:"name" db:"name"`
	IsPresent bool      `json:"is_present" db:"is_present"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
