// internal/services/session_service.go
// Session lifecycle and the engine instance that belongs to it. Same CRUD
// plus one core domain operation shape, with broadcast notifications, as
// the rest of this package's services, but
// round generation delegates to internal/engine instead of touching SQL
// directly.

package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"badminton-court-engine/internal/config"
	"badminton-court-engine/internal/engine"
	"badminton-court-engine/internal/models"
	"badminton-court-engine/internal/repositories"
	"badminton-court-engine/internal/utils"
)

// SessionService handles session CRUD and owns the live engine.Engine
// instance backing each session.
type SessionService struct {
	repos        *repositories.Container
	cache        *CacheService
	broadcast    *BroadcastService
	engineConfig config.EngineConfig
	logger       *log.Logger

	mu      sync.Mutex
	engines map[string]*engine.Engine
	roundNo map[string]int
}

// NewSessionService creates a new session service
func NewSessionService(
	repos *repositories.Container,
	cache *CacheService,
	broadcast *BroadcastService,
	engineConfig config.EngineConfig,
	logger *log.Logger,
) *SessionService {
	return &SessionService{
		repos:        repos,
		cache:        cache,
		broadcast:    broadcast,
		engineConfig: engineConfig,
		logger:       logger,
		engines:      make(map[string]*engine.Engine),
		roundNo:      make(map[string]int),
	}
}

// CreateSessionRequest represents the data needed to create a session
type CreateSessionRequest struct {
	Name           string             `json:"name" binding:"required,min=3,max=255"`
	NumberOfCourts int                `json:"number_of_courts" binding:"required,min=1"`
	EngineVariant  engine.VariantType `json:"engine_variant"`
	RNGSeed        *int64             `json:"rng_seed"`
}

// Create creates a new session and its backing engine
func (s *SessionService) Create(ctx context.Context, organizerID string, req CreateSessionRequest) (*models.Session, error) {
	if err := utils.ValidateSessionName(req.Name); err != nil {
		return nil, err
	}

	variant := req.EngineVariant
	if variant == "" {
		variant = s.engineConfig.Variant
	}

	session := &models.Session{
		ID:             utils.GenerateUUID(),
		OrganizerID:    organizerID,
		Name:           req.Name,
		NumberOfCourts: req.NumberOfCourts,
		EngineVariant:  string(variant),
		CostWeights:    models.CostWeightsJSON(s.engineConfig.Weights),
		RNGSeed:        req.RNGSeed,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.repos.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetByID retrieves a session's configuration row
func (s *SessionService) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return s.repos.Session.GetByID(ctx, id)
}

// List retrieves sessions belonging to an organizer
func (s *SessionService) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Session, int, error) {
	return s.repos.Session.List(ctx, filter)
}

// IsOwner checks if a user owns a session
func (s *SessionService) IsOwner(ctx context.Context, sessionID, userID string) (bool, error) {
	return s.repos.Session.IsOwnedBy(ctx, sessionID, userID)
}

// Delete removes a session along with its engine state and archive
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.engines, sessionID)
	delete(s.roundNo, sessionID)
	s.mu.Unlock()

	if err := s.repos.State.Delete(ctx, sessionID); err != nil {
		s.logger.Printf("failed to delete state for session %s: %v", sessionID, err)
	}
	if err := s.repos.RoundArchive.DeleteBySessionID(ctx, sessionID); err != nil {
		s.logger.Printf("failed to delete round archive for session %s: %v", sessionID, err)
	}

	return s.repos.Session.Delete(ctx, sessionID)
}

// engineFor returns the live engine for a session, restoring persisted
// history from Redis on first access and wiring a listener that persists
// every subsequent mutation back.
func (s *SessionService) engineFor(ctx context.Context, sessionID string) (*engine.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eng, ok := s.engines[sessionID]; ok {
		return eng, nil
	}

	session, err := s.repos.Session.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	opts := session.EngineOptions()
	opts.MCSamples = s.engineConfig.MCSamples
	opts.SAIterations = s.engineConfig.SAIterations
	opts.SAT0 = s.engineConfig.SAT0
	opts.SADecay = s.engineConfig.SADecay
	opts.SAFloor = s.engineConfig.SAFloor
	eng := engine.New(opts)

	if snapshot, ok, err := s.repos.State.Load(ctx, sessionID); err != nil {
		s.logger.Printf("failed to load persisted state for session %s: %v", sessionID, err)
	} else if ok {
		eng.LoadState(snapshot)
	}

	// Listeners run synchronously, sometimes while Generate or UpdateWinner
	// holds the engine's lock, so the listener does not call back into the
	// engine itself: it hands the save to a goroutine. saveMu runs those saves
	// one at a time, and each takes a fresh snapshot, so the last save holds
	// the latest state.
	var saveMu sync.Mutex
	eng.OnStateChange(func() {
		go func() {
			saveMu.Lock()
			defer saveMu.Unlock()
			if err := s.repos.State.Save(context.Background(), sessionID, eng.PrepareStateForSaving()); err != nil {
				s.logger.Printf("failed to persist state for session %s: %v", sessionID, err)
			}
		}()
	})

	s.engines[sessionID] = eng
	return eng, nil
}

// GenerateRound builds the roster present for this round and runs the
// engine over it, archiving and broadcasting the result.
func (s *SessionService) GenerateRound(ctx context.Context, sessionID string, manualPin *engine.ManualPin, forceBenchIDs map[string]bool) (*engine.Round, error) {
	session, err := s.repos.Session.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	roster, err := s.repos.Player.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	players := make([]engine.Player, 0, len(roster))
	for _, p := range roster {
		players = append(players, engine.Player{ID: p.ID, Name: p.Name, IsPresent: p.IsPresent})
	}

	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	round, err := eng.Generate(players, session.NumberOfCourts, manualPin, forceBenchIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.roundNo[sessionID]++
	roundNumber := s.roundNo[sessionID]
	s.mu.Unlock()

	go s.archiveRound(sessionID, roundNumber, round)

	s.broadcast.RoundGenerated(sessionID, round)

	return round, nil
}

// archiveRound writes the append-only record of a generated round to Mongo
func (s *SessionService) archiveRound(sessionID string, roundNumber int, round *engine.Round) {
	courts := make([]models.CourtRecord, 0, len(round.Courts))
	for _, c := range round.Courts {
		record := models.CourtRecord{
			CourtNumber:         c.CourtNumber,
			Winner:              int(c.Winner),
			WasManuallyAssigned: c.WasManuallyAssigned,
		}
		if c.Team1 != nil {
			record.Team1PlayerIDs = playerIDs(c.Team1.Players)
		}
		if c.Team2 != nil {
			record.Team2PlayerIDs = playerIDs(c.Team2.Players)
		}
		courts = append(courts, record)
	}

	benched := make([]string, 0, len(round.Benched))
	for _, p := range round.Benched {
		benched = append(benched, p.ID)
	}

	entry := models.RoundArchiveEntry{
		SessionID:   sessionID,
		RoundNumber: roundNumber,
		GeneratedAt: time.Now(),
		Courts:      courts,
		Benched:     benched,
	}

	if err := s.repos.RoundArchive.Append(context.Background(), entry); err != nil {
		s.logger.Printf("failed to archive round %d for session %s: %v", roundNumber, sessionID, err)
	}
}

func playerIDs(players []engine.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// GetRoundArchive retrieves the archived rounds for a session
func (s *SessionService) GetRoundArchive(ctx context.Context, sessionID string) ([]models.RoundArchiveEntry, error) {
	return s.repos.RoundArchive.ListBySessionID(ctx, sessionID)
}

// UpdateWinner records or reverses a court's winner on the current round
func (s *SessionService) UpdateWinner(ctx context.Context, sessionID string, courtNumber int, winner engine.Winner) (*engine.Round, error) {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	round, err := eng.UpdateWinner(courtNumber, winner)
	if err != nil {
		return nil, err
	}

	s.broadcast.WinnerUpdated(sessionID, round)

	return round, nil
}

// CurrentRound returns the last round generated for a session, or nil
func (s *SessionService) CurrentRound(ctx context.Context, sessionID string) (*engine.Round, error) {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return eng.CurrentRound(), nil
}

// HistoryCounts aggregates every counter the engine tracks for a session
type HistoryCounts struct {
	Bench    map[string]uint32 `json:"bench"`
	Single   map[string]uint32 `json:"single"`
	Teammate map[string]uint32 `json:"teammate"`
	Opponent map[string]uint32 `json:"opponent"`
	Win      map[string]uint32 `json:"win"`
	Loss     map[string]uint32 `json:"loss"`
}

// ReverseWinForCourt undoes a previously recorded win/loss for one court
func (s *SessionService) ReverseWinForCourt(ctx context.Context, sessionID string, courtNumber int) error {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return err
	}

	eng.ReverseWinForCourt(courtNumber)
	s.broadcast.WinnerUpdated(sessionID, eng.CurrentRound())

	return nil
}

// ClearCurrentSession clears the current-round bookkeeping without touching
// the cumulative history counters
func (s *SessionService) ClearCurrentSession(ctx context.Context, sessionID string) error {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return err
	}

	eng.ClearCurrentSession()
	s.broadcast.HistoryReset(sessionID)

	return nil
}

// GetState returns the raw persisted snapshot for a session
func (s *SessionService) GetState(ctx context.Context, sessionID string) (engine.StateSnapshot, error) {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return engine.StateSnapshot{}, err
	}
	return eng.PrepareStateForSaving(), nil
}

// LoadState overwrites a session's history counters from a snapshot
func (s *SessionService) LoadState(ctx context.Context, sessionID string, snapshot engine.StateSnapshot) error {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return err
	}

	eng.LoadState(snapshot)
	s.broadcast.HistoryReset(sessionID)

	return nil
}

// GetHistory retrieves every history counter for a session
func (s *SessionService) GetHistory(ctx context.Context, sessionID string) (HistoryCounts, error) {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return HistoryCounts{}, err
	}

	return HistoryCounts{
		Bench:    eng.GetBenchCounts(),
		Single:   eng.GetSingleCounts(),
		Teammate: eng.GetTeammateCounts(),
		Opponent: eng.GetOpponentCounts(),
		Win:      eng.GetWinCounts(),
		Loss:     eng.GetLossCounts(),
	}, nil
}

// ResetHistory clears every history counter for a session
func (s *SessionService) ResetHistory(ctx context.Context, sessionID string) error {
	eng, err := s.engineFor(ctx, sessionID)
	if err != nil {
		return err
	}

	eng.ResetHistory()
	s.broadcast.HistoryReset(sessionID)

	return nil
}
