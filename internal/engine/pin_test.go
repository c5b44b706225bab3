package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyManualPinDoublesCourt(t *testing.T) {
	present := playersN(8)
	pin := &ManualPin{Players: present[:4]}

	court1, residual := applyManualPin(present, pin, nil, emptyCost())

	require.NotNil(t, court1)
	require.Equal(t, 1, court1.CourtNumber)
	require.True(t, court1.WasManuallyAssigned)
	require.True(t, court1.HasTeams())
	require.Len(t, residual, 4)
}

func TestApplyManualPinSinglesCourt(t *testing.T) {
	present := playersN(4)
	pin := &ManualPin{Players: present[:2]}

	court1, residual := applyManualPin(present, pin, nil, emptyCost())

	require.NotNil(t, court1)
	require.Len(t, court1.Players, 2)
	require.Len(t, residual, 2)
}

func TestApplyManualPinThreePlayersHasWaiting(t *testing.T) {
	present := playersN(4)
	pin := &ManualPin{Players: present[:3]}

	court1, _ := applyManualPin(present, pin, nil, emptyCost())

	require.NotNil(t, court1)
	require.NotNil(t, court1.Waiting)
}

func TestApplyManualPinInvalidCardinalityIgnored(t *testing.T) {
	present := playersN(4)
	pin := &ManualPin{Players: present[:1]}

	court1, residual := applyManualPin(present, pin, nil, emptyCost())

	require.Nil(t, court1)
	require.Len(t, residual, 4)
}

func TestApplyManualPinDropsAbsentPlayers(t *testing.T) {
	present := playersN(4)
	absent := Player{ID: "ghost", IsPresent: false}
	pin := &ManualPin{Players: []Player{present[0], present[1], absent}}

	court1, residual := applyManualPin(present, pin, nil, emptyCost())

	// Cardinality after filtering out the absent player is 2, which is valid.
	require.NotNil(t, court1)
	require.Len(t, court1.Players, 2)
	require.Len(t, residual, 2)
}

func TestApplyManualPinForceBenchOverridesPin(t *testing.T) {
	present := playersN(4)
	pin := &ManualPin{Players: present[:2]}
	forceBench := map[string]bool{present[0].ID: true}

	court1, residual := applyManualPin(present, pin, forceBench, emptyCost())

	// Only one pinned player remains after force-bench removes the other,
	// which falls below the [2,4] cardinality floor, so the pin is ignored
	// and every player except the force-benched one stays in the pool.
	require.Nil(t, court1)
	require.Len(t, residual, 3)
}

func TestApplyManualPinNilPinLeavesEveryonePresent(t *testing.T) {
	present := playersN(5)
	court1, residual := applyManualPin(present, nil, nil, emptyCost())

	require.Nil(t, court1)
	require.Len(t, residual, 5)
}
