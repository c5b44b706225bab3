package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyCost() costModel {
	return costModel{teammate: make(countMap), opponent: make(countMap), win: make(countMap), weights: DefaultCostWeights()}
}

func TestGenerateCandidatePartitionsExactMultipleOfFour(t *testing.T) {
	c := generateCandidate(playersN(8), 1, emptyCost(), seededRNG(1))
	require.Len(t, c.courts, 2)
	for _, court := range c.courts {
		require.Len(t, court.Players, 4)
		require.True(t, court.HasTeams())
	}
}

func TestGenerateCandidateRemainderTwoBecomesSingles(t *testing.T) {
	c := generateCandidate(playersN(6), 1, emptyCost(), seededRNG(1))
	require.Len(t, c.courts, 2)
	require.Len(t, c.courts[1].Players, 2)
	require.Nil(t, c.courts[1].Waiting)
}

func TestGenerateCandidateRemainderThreeHasWaitingPlayer(t *testing.T) {
	c := generateCandidate(playersN(7), 1, emptyCost(), seededRNG(1))
	require.Len(t, c.courts, 2)
	require.Len(t, c.courts[1].Players, 3)
	require.NotNil(t, c.courts[1].Waiting)
}

func TestGenerateCandidateCourtNumbersSequential(t *testing.T) {
	c := generateCandidate(playersN(8), 5, emptyCost(), seededRNG(1))
	require.Equal(t, 5, c.courts[0].CourtNumber)
	require.Equal(t, 6, c.courts[1].CourtNumber)
}

func TestGenerateCandidateNeverDuplicatesOrDropsExceptRemainderOne(t *testing.T) {
	present := playersN(8)
	c := generateCandidate(present, 1, emptyCost(), seededRNG(1))

	seen := map[string]bool{}
	for _, court := range c.courts {
		for _, p := range court.Players {
			require.False(t, seen[p.ID], "player placed twice: %s", p.ID)
			seen[p.ID] = true
		}
	}
	require.Len(t, seen, 8)
}
