// internal/engine/types.go
// Core entities of the court assignment engine.

package engine

// Player is a roster entry. Identity is by ID; two players with the same
// name but different IDs are distinct.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPresent bool   `json:"is_present"`
}

// Winner identifies which team (if any) won a court.
type Winner int

const (
	NoWinner Winner = iota
	Team1Won
	Team2Won
)

// Team is one side of a court: one player (singles) or two (doubles).
type Team struct {
	Players []Player `json:"players"`
}

// winSum is the sum of winCount across a team's players, the per-team
// quantity of the skill-balance cost term (costModel.courtCost computes the
// same sums inline rather than calling this).
func (t Team) winSum(wins map[string]uint32) uint32 {
	var sum uint32
	for _, p := range t.Players {
		sum += wins[p.ID]
	}
	return sum
}

// Court is a single playing venue for the current round.
type Court struct {
	CourtNumber         int      `json:"court_number"`
	Players             []Player `json:"players"`
	Team1               *Team    `json:"team1,omitempty"`
	Team2               *Team    `json:"team2,omitempty"`
	Waiting             *Player  `json:"waiting,omitempty"`
	Winner              Winner   `json:"winner"`
	WasManuallyAssigned bool     `json:"was_manually_assigned"`
}

// HasTeams reports whether both sides of the court are populated.
func (c *Court) HasTeams() bool {
	return c.Team1 != nil && c.Team2 != nil && len(c.Team1.Players) > 0 && len(c.Team2.Players) > 0
}

// Round is one generate() output: the courts plus the derived bench.
type Round struct {
	Courts  []*Court `json:"courts"`
	Benched []Player `json:"benched"`
}

// CourtByNumber finds a court in the round by its number, or nil.
func (r *Round) CourtByNumber(n int) *Court {
	for _, c := range r.Courts {
		if c.CourtNumber == n {
			return c
		}
	}
	return nil
}

// ManualPin is an optional user-supplied court 1.
type ManualPin struct {
	Players []Player
}

// VariantType selects one of the interchangeable optimizers.
type VariantType string

const (
	VariantMonteCarlo        VariantType = "mc"
	VariantSimulatedAnnealing VariantType = "sa"
	VariantConflictGreedy    VariantType = "cg"
)

// CostWeights tunes the relative weight of each cost term. All default to 1.
type CostWeights struct {
	Teammate float64
	Opponent float64
	Skill    float64
}

// DefaultCostWeights returns the uniform-weight default.
func DefaultCostWeights() CostWeights {
	return CostWeights{Teammate: 1, Opponent: 1, Skill: 1}
}

// Options configures an Engine instance.
type Options struct {
	Variant     VariantType
	MCSamples   int
	SAIterations int
	SAT0        float64
	SADecay     float64
	SAFloor     float64
	CostWeights CostWeights
	RNGSeed     *int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Variant:      VariantSimulatedAnnealing,
		MCSamples:    300,
		SAIterations: 5000,
		SAT0:         10,
		SADecay:      0.999,
		SAFloor:      0.01,
		CostWeights:  DefaultCostWeights(),
	}
}
