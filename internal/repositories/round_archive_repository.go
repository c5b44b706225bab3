// internal/repositories/round_archive_repository.go
// Round archive data access (MongoDB). Append-only: rounds are written once
// when generated and never mutated, only ever listed back for display.

package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"badminton-court-engine/internal/models"
)

// RoundArchiveRepository handles round archive entries in MongoDB
type RoundArchiveRepository struct {
	collection *mongo.Collection
}

// NewRoundArchiveRepository creates a new round archive repository
func NewRoundArchiveRepository(db *mongo.Database) *RoundArchiveRepository {
	return &RoundArchiveRepository{
		collection: db.Collection("round_archive"),
	}
}

// Append records a newly generated round as a new document. It does not
// check for an existing entry with the same session/round number pair.
func (r *RoundArchiveRepository) Append(ctx context.Context, entry models.RoundArchiveEntry) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// ListBySessionID retrieves the archived rounds for a session, most recent first
func (r *RoundArchiveRepository) ListBySessionID(ctx context.Context, sessionID string) ([]models.RoundArchiveEntry, error) {
	opts := options.Find().SetSort(bson.M{"round_number": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.RoundArchiveEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteBySessionID removes every archived round for a session, used when
// a session itself is deleted.
func (r *RoundArchiveRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
