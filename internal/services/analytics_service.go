// internal/services/analytics_service.go
// Analytics and event tracking

package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsService handles analytics and event tracking
type AnalyticsService struct {
	db     *mongo.Database
	cache  *CacheService
	logger *log.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *mongo.Database, cache *CacheService, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// LogEvent logs an analytics event
func (s *AnalyticsService) LogEvent(ctx context.Context, eventType string, data map[string]interface{}) error {
	event := bson.M{
		"type":       eventType,
		"data":       data,
		"timestamp":  time.Now(),
		"created_at": time.Now(),
	}

	_, err := s.db.Collection("analytics_events").InsertOne(ctx, event)
	if err != nil {
		s.logger.Printf("Failed to log analytics event: %v", err)
		// Analytics failures never break the request that triggered them
	}

	return nil
}

// GetSessionStats retrieves engagement statistics for a session
func (s *AnalyticsService) GetSessionStats(ctx context.Context, sessionID string) (map[string]interface{}, error) {
	roundsGenerated, err := s.db.Collection("analytics_events").CountDocuments(ctx, bson.M{
		"type": "round_generated", "data.session_id": sessionID,
	})
	if err != nil {
		return nil, err
	}

	winnersRecorded, err := s.db.Collection("analytics_events").CountDocuments(ctx, bson.M{
		"type": "winner_recorded", "data.session_id": sessionID,
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"rounds_generated": roundsGenerated,
		"winners_recorded": winnersRecorded,
	}, nil
}

// GetPlatformStats retrieves platform-wide statistics
func (s *AnalyticsService) GetPlatformStats(ctx context.Context) (map[string]interface{}, error) {
	var stats map[string]interface{}
	if err := s.cache.Get("platform_stats", &stats); err == nil {
		return stats, nil
	}

	sessionsCreated, err := s.db.Collection("analytics_events").CountDocuments(ctx, bson.M{"type": "session_created"})
	if err != nil {
		return nil, err
	}

	stats = map[string]interface{}{
		"total_sessions_created": sessionsCreated,
	}

	s.cache.Set("platform_stats", stats, 5*time.Minute)

	return stats, nil
}
