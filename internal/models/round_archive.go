// internal/models/round_archive.go
// Append-only round history stored in MongoDB (supplemented feature: the
// engine's own history is forward-only counters, never a replayable log).

package models

import "time"

// RoundArchiveEntry is one generated round, kept purely for retrospective
// display/analytics. Never read back into the cost function.
type RoundArchiveEntry struct {
	SessionID   string        `bson:"session_id" json:"session_id"`
	RoundNumber int           `bson:"round_number" json:"round_number"`
	GeneratedAt time.Time     `bson:"generated_at" json:"generated_at"`
	Courts      []CourtRecord `bson:"courts" json:"courts"`
	Benched     []string      `bson:"benched" json:"benched"`
}

// CourtRecord is the archived shape of an engine.Court.
type CourtRecord struct {
	CourtNumber         int      `bson:"court_number" json:"court_number"`
	Team1PlayerIDs      []string `bson:"team1_player_ids" json:"team1_player_ids"`
	Team2PlayerIDs      []string `bson:"team2_player_ids" json:"team2_player_ids"`
	Winner              int      `bson:"winner" json:"winner"`
	WasManuallyAssigned bool     `bson:"was_manually_assigned" json:"was_manually_assigned"`
}
