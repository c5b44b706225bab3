package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourtCostTeammateAndOpponentWeights(t *testing.T) {
	teammate := make(countMap)
	teammate.increment(PairKey("a", "b"), 3)
	opponent := make(countMap)
	opponent.increment(PairKey("a", "c"), 2)

	m := costModel{teammate: teammate, opponent: opponent, win: make(countMap), weights: DefaultCostWeights()}

	team1 := []Player{{ID: "a"}, {ID: "b"}}
	team2 := []Player{{ID: "c"}, {ID: "d"}}

	cost := m.courtCost(team1, team2)
	// teammate pair (a,b)=3, opponent pairs (a,c)=2,(a,d)=0,(b,c)=0,(b,d)=0
	require.Equal(t, float64(5), cost)
}

func TestCourtCostSkillImbalance(t *testing.T) {
	win := make(countMap)
	win.increment("a", 5)
	win.increment("b", 1)

	m := costModel{teammate: make(countMap), opponent: make(countMap), win: win, weights: DefaultCostWeights()}
	cost := m.courtCost([]Player{{ID: "a"}}, []Player{{ID: "b"}})
	require.Equal(t, float64(4), cost)
}

func TestCourtCostPairKeyOrderIndependence(t *testing.T) {
	teammate := make(countMap)
	teammate.increment(PairKey("b", "a"), 2)

	m := costModel{teammate: teammate, opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}
	cost := m.courtCost([]Player{{ID: "a"}, {ID: "b"}}, nil)
	require.Equal(t, float64(2), cost)
}

func TestChooseSplitPicksMinimumCost(t *testing.T) {
	teammate := make(countMap)
	// Make split S1 (0,1 vs 2,3) expensive by penalizing pair (0,1).
	teammate.increment(PairKey("p0", "p1"), 100)

	m := costModel{teammate: teammate, opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}
	group := [4]Player{{ID: "p0"}, {ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	result := chooseSplit(group, m)
	require.NotContains(t, result.team1, Player{ID: "p1"})
}

func TestChooseSplitTiesFavorFirstEnumerated(t *testing.T) {
	m := costModel{teammate: make(countMap), opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}
	group := [4]Player{{ID: "p0"}, {ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	result := chooseSplit(group, m)
	require.Equal(t, []Player{{ID: "p0"}, {ID: "p1"}}, result.team1)
	require.Equal(t, []Player{{ID: "p2"}, {ID: "p3"}}, result.team2)
}
