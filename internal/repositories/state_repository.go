// internal/repositories/state_repository.go
// Engine state snapshot persistence (Redis). A session's StateSnapshot is
// the only thing that survives a server restart; rosters and sessions
// themselves live in MySQL, but history counters are rebuilt from here.

package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"badminton-court-engine/internal/engine"
)

const stateKeyPrefix = "badminton-court-engine-state:"

// StateRepository persists engine.StateSnapshot per session
type StateRepository struct {
	client *redis.Client
}

// NewStateRepository creates a new state repository
func NewStateRepository(client *redis.Client) *StateRepository {
	return &StateRepository{client: client}
}

func stateKey(sessionID string) string {
	return stateKeyPrefix + sessionID
}

// Save persists the session's current engine state, overwriting any prior snapshot
func (r *StateRepository) Save(ctx context.Context, sessionID string, snapshot engine.StateSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal state snapshot: %w", err)
	}

	if err := r.client.Set(ctx, stateKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state snapshot: %w", err)
	}

	return nil
}

// Load retrieves the session's persisted engine state. Returns ok=false if
// no snapshot has ever been saved for this session.
func (r *StateRepository) Load(ctx context.Context, sessionID string) (snapshot engine.StateSnapshot, ok bool, err error) {
	data, err := r.client.Get(ctx, stateKey(sessionID)).Bytes()
	if err == redis.Nil {
		return engine.StateSnapshot{}, false, nil
	}
	if err != nil {
		return engine.StateSnapshot{}, false, fmt.Errorf("failed to load state snapshot: %w", err)
	}

	if err := json.Unmarshal(data, &snapshot); err != nil {
		return engine.StateSnapshot{}, false, fmt.Errorf("failed to unmarshal state snapshot: %w", err)
	}

	return snapshot, true, nil
}

// Delete removes a session's persisted engine state
func (r *StateRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, stateKey(sessionID)).Err()
}
