// internal/models/session.go
// Domain models representing core business entities: a Session groups a
// roster and one engine configuration together under a single owner.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"badminton-court-engine/internal/engine"
)

// Session represents one running instance of the court assignment engine:
// a named roster plus the engine configuration applied to it.
type Session struct {
	ID             string          `json:"id" db:"id"`
	OrganizerID    string          `json:"organizer_id" db:"organizer_id"`
	Name           string          `json:"name" db:"name"`
	NumberOfCourts int             `json:"number_of_courts" db:"number_of_courts"`
	EngineVariant  string          `json:"engine_variant" db:"engine_variant"`
	CostWeights    CostWeightsJSON `json:"cost_weights" db:"cost_weights"`
	RNGSeed        *int64          `json:"rng_seed,omitempty" db:"rng_seed"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// CostWeightsJSON stores engine.CostWeights as a JSON column.
type CostWeightsJSON engine.CostWeights

// EngineOptions builds engine.Options from the persisted session row,
// applying the package defaults for every field the row doesn't override.
func (s Session) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	if s.EngineVariant != "" {
		opts.Variant = engine.VariantType(s.EngineVariant)
	}
	if s.CostWeights != (CostWeightsJSON{}) {
		opts.CostWeights = engine.CostWeights(s.CostWeights)
	}
	opts.RNGSeed = s.RNGSeed
	return opts
}

// Implement sql.Scanner and driver.Valuer for the CostWeights JSON column.
func (w *CostWeightsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into CostWeightsJSON", value)
	}
	return json.Unmarshal(bytes, w)
}

func (w CostWeightsJSON) Value() (driver.Value, error) {
	return json.Marshal(w)
}
