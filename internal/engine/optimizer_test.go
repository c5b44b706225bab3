package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allPlaced(t *testing.T, onCourt []Player, courts []*Court) {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range courts {
		for _, p := range c.Players {
			require.False(t, seen[p.ID], "duplicate placement: %s", p.ID)
			seen[p.ID] = true
		}
	}
	require.Len(t, seen, len(onCourt))
}

func TestMonteCarloPartitionsEveryPlayerOnce(t *testing.T) {
	v := &monteCarloVariant{samples: 10, cost: emptyCost(), rng: seededRNG(1)}
	courts := v.Optimize(playersN(8), 1)
	allPlaced(t, playersN(8), courts)
}

func TestMonteCarloIsDeterministicForFixedSeed(t *testing.T) {
	players := playersN(8)
	v1 := &monteCarloVariant{samples: 20, cost: emptyCost(), rng: seededRNG(42)}
	v2 := &monteCarloVariant{samples: 20, cost: emptyCost(), rng: seededRNG(42)}

	c1 := v1.Optimize(players, 1)
	c2 := v2.Optimize(players, 1)

	require.Equal(t, len(c1), len(c2))
	for i := range c1 {
		require.ElementsMatch(t, c1[i].Players, c2[i].Players)
	}
}

func TestConflictGreedyPartitionsEveryPlayerOnce(t *testing.T) {
	v := &conflictGreedyVariant{cost: emptyCost(), rng: seededRNG(1), benchCounts: make(countMap)}
	players := playersN(8)
	courts := v.Optimize(players, 1)
	allPlaced(t, players, courts)
}

func TestConflictGreedyHandlesRemainderOneByTrimming(t *testing.T) {
	v := &conflictGreedyVariant{cost: emptyCost(), rng: seededRNG(1), benchCounts: make(countMap)}
	players := playersN(9)
	courts := v.Optimize(players, 1)

	placed := 0
	for _, c := range courts {
		placed += len(c.Players)
	}
	require.Equal(t, 8, placed)
}

func TestConflictGreedyAvoidsRepeatTeammates(t *testing.T) {
	teammate := make(countMap)
	teammate.increment(PairKey("a", "b"), 10)
	cost := costModel{teammate: teammate, opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}

	v := &conflictGreedyVariant{cost: cost, rng: seededRNG(1), benchCounts: make(countMap)}
	players := []Player{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	courts := v.Optimize(players, 1)

	require.Len(t, courts, 1)
	require.False(t, sameTeam(courts[0], "a", "b"))
}

func sameTeam(c *Court, id1, id2 string) bool {
	inTeam := func(team *Team, id string) bool {
		for _, p := range team.Players {
			if p.ID == id {
				return true
			}
		}
		return false
	}
	return (inTeam(c.Team1, id1) && inTeam(c.Team1, id2)) || (inTeam(c.Team2, id1) && inTeam(c.Team2, id2))
}

func TestSimulatedAnnealingPartitionsEveryPlayerOnce(t *testing.T) {
	v := &simulatedAnnealingVariant{iterations: 50, t0: 10, decay: 0.99, floor: 0.01, cost: emptyCost(), rng: seededRNG(1)}
	players := playersN(8)
	courts := v.Optimize(players, 1)
	allPlaced(t, players, courts)
}

func TestSimulatedAnnealingNeverWorsensStartingCandidate(t *testing.T) {
	teammate := make(countMap)
	teammate.increment(PairKey("a", "b"), 50)
	cost := costModel{teammate: teammate, opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}

	seed := (&monteCarloVariant{samples: 1, cost: cost, rng: seededRNG(7)}).Optimize(playersN(4), 1)
	startCost := totalCostOf(seed, cost)

	v := &simulatedAnnealingVariant{iterations: 200, t0: 10, decay: 0.95, floor: 0.01, cost: cost, rng: seededRNG(7)}
	result := v.Optimize(playersN(4), 1)
	endCost := totalCostOf(result, cost)

	require.LessOrEqual(t, endCost, startCost)
}

func TestNewVariantDefaultsToSimulatedAnnealing(t *testing.T) {
	opts := DefaultOptions()
	v := newVariant("", opts, emptyCost(), seededRNG(1), make(countMap))
	_, ok := v.(*simulatedAnnealingVariant)
	require.True(t, ok)
}
