// internal/engine/facade.go
// Engine facade: unifies the pair-key, history, bench, team-split,
// candidate, cost, optimizer, pin, and winner logic behind a single
// interface, selects the active optimizer variant, and owns persistence
// hooks. Designed for single-threaded cooperative execution; a host
// embedding this in a multi-threaded runtime must serialize access with its
// own mutex, but the facade also guards its own state with one internal
// mutex so a single process never corrupts itself.

package engine

import "sync"

// Engine is the facade over one session's scheduling state. One Engine owns
// one HistoryTracker and one current Round; switching the active variant
// does not alter history state, since all variants share the same maps.
type Engine struct {
	mu sync.Mutex

	history *HistoryTracker
	rng     *RNG
	opts    Options

	currentRound *Round
}

// New constructs an Engine with the given options, defaulting unset fields.
func New(opts Options) *Engine {
	if opts.Variant == "" {
		opts.Variant = DefaultOptions().Variant
	}
	if opts.MCSamples <= 0 {
		opts.MCSamples = DefaultOptions().MCSamples
	}
	if opts.SAIterations <= 0 {
		opts.SAIterations = DefaultOptions().SAIterations
	}
	if opts.SAT0 <= 0 {
		opts.SAT0 = DefaultOptions().SAT0
	}
	if opts.SADecay <= 0 {
		opts.SADecay = DefaultOptions().SADecay
	}
	if opts.SAFloor <= 0 {
		opts.SAFloor = DefaultOptions().SAFloor
	}
	if opts.CostWeights == (CostWeights{}) {
		opts.CostWeights = DefaultCostWeights()
	}

	return &Engine{
		history: NewHistoryTracker(),
		rng:     NewRNG(opts.RNGSeed),
		opts:    opts,
	}
}

// SetVariant switches the active optimizer for subsequent Generate calls.
func (e *Engine) SetVariant(v VariantType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.Variant = v
}

// Generate runs the full pin/bench/optimize pipeline for one round.
func (e *Engine) Generate(players []Player, numberOfCourts int, manualPin *ManualPin, forceBenchIDs map[string]bool) (*Round, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if numberOfCourts < 0 {
		return nil, newFatalError("numberOfCourts must be non-negative")
	}

	var present []Player
	for _, p := range players {
		if p.IsPresent {
			present = append(present, p)
		}
	}

	if e.currentRound != nil {
		e.history.RecordWins(e.currentRound.Courts)
	}
	e.history.ClearCurrentSession()

	if len(present) == 0 {
		round := &Round{}
		e.currentRound = round
		return round, nil
	}

	if forceBenchIDs == nil {
		forceBenchIDs = map[string]bool{}
	}

	teammate, opponent, win := e.history.snapshotForCost()
	cost := costModel{teammate: teammate, opponent: opponent, win: win, weights: e.opts.CostWeights}

	court1, residual := applyManualPin(present, manualPin, forceBenchIDs, cost)

	effectiveCourts := numberOfCourts
	if court1 != nil {
		effectiveCourts = numberOfCourts - 1
	}

	benchCounts := e.history.snapshotBench()
	computedBench := selectBench(residual, effectiveCourts, benchCounts, e.rng)

	computedBenchIDs := make(map[string]bool, len(computedBench))
	for _, p := range computedBench {
		computedBenchIDs[p.ID] = true
	}

	var onCourt []Player
	for _, p := range residual {
		if !computedBenchIDs[p.ID] {
			onCourt = append(onCourt, p)
		}
	}

	startNumber := 1
	if court1 != nil {
		startNumber = 2
	}

	var optimizedCourts []*Court
	if effectiveCourts > 0 && len(onCourt) > 0 {
		variant := newVariant(e.opts.Variant, e.opts, cost, e.rng, benchCounts)
		optimizedCourts = variant.Optimize(onCourt, startNumber)
	}

	var allCourts []*Court
	if court1 != nil {
		allCourts = append(allCourts, court1)
	}
	allCourts = append(allCourts, optimizedCourts...)

	placed := map[string]bool{}
	for _, c := range allCourts {
		for _, p := range c.Players {
			placed[p.ID] = true
		}
	}

	var benched []Player
	benchedIDs := map[string]bool{}
	for _, p := range present {
		if placed[p.ID] {
			continue
		}
		if benchedIDs[p.ID] {
			continue
		}
		benched = append(benched, p)
		benchedIDs[p.ID] = true
	}

	e.history.applyRoundCounts(benched, allCourts)

	round := &Round{Courts: allCourts, Benched: benched}
	e.currentRound = round
	return round, nil
}

// GetBenchedPlayers returns the players absent from every court in courts
// but present in players.
func (e *Engine) GetBenchedPlayers(courts []*Court, players []Player) []Player {
	placed := map[string]bool{}
	for _, c := range courts {
		for _, p := range c.Players {
			placed[p.ID] = true
		}
	}

	var benched []Player
	for _, p := range players {
		if p.IsPresent && !placed[p.ID] {
			benched = append(benched, p)
		}
	}
	return benched
}

// CurrentRound returns the round held by the most recent Generate call.
func (e *Engine) CurrentRound() *Round {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentRound
}

// RecordWins delegates to the History Tracker.
func (e *Engine) RecordWins(courts []*Court) { e.history.RecordWins(courts) }

// UpdateWinner applies a winner change to the round held from the most
// recent Generate call and returns the updated round (nil when no round has
// been generated yet). courtNumber must be positive; a non-positive value is
// a programming error.
func (e *Engine) UpdateWinner(courtNumber int, newWinner Winner) (*Round, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if courtNumber <= 0 {
		return nil, newFatalError("courtNumber must be positive")
	}
	if e.currentRound == nil {
		return nil, nil
	}

	return e.history.UpdateWinner(courtNumber, newWinner, e.currentRound), nil
}

// ReverseWinForCourt delegates to the History Tracker.
func (e *Engine) ReverseWinForCourt(courtNumber int) { e.history.ReverseWinForCourt(courtNumber) }

// GetWinCounts, GetBenchCounts etc. delegate to the History Tracker.
func (e *Engine) GetWinCounts() map[string]uint32      { return e.history.GetWinCounts() }
func (e *Engine) GetLossCounts() map[string]uint32     { return e.history.GetLossCounts() }
func (e *Engine) GetBenchCounts() map[string]uint32    { return e.history.GetBenchCounts() }
func (e *Engine) GetSingleCounts() map[string]uint32   { return e.history.GetSingleCounts() }
func (e *Engine) GetTeammateCounts() map[string]uint32 { return e.history.GetTeammateCounts() }
func (e *Engine) GetOpponentCounts() map[string]uint32 { return e.history.GetOpponentCounts() }

// ResetHistory clears all history state.
func (e *Engine) ResetHistory() { e.history.ResetHistory() }

// ClearCurrentSession clears only the current-session match records.
func (e *Engine) ClearCurrentSession() { e.history.ClearCurrentSession() }

// PrepareStateForSaving returns a snapshot tagged with the active variant.
func (e *Engine) PrepareStateForSaving() StateSnapshot {
	e.mu.Lock()
	vt := string(e.opts.Variant)
	e.mu.Unlock()

	snap := e.history.PrepareStateForSaving()
	snap.EngineType = vt
	return snap
}

// LoadState restores the six maps from a snapshot. An empty/zero snapshot
// is valid (missing fields default to empty).
func (e *Engine) LoadState(s StateSnapshot) {
	e.history.LoadState(s)
}

// OnStateChange registers a listener for any History Tracker mutation.
func (e *Engine) OnStateChange(l Listener) (unsubscribe func()) {
	return e.history.OnStateChange(l)
}
