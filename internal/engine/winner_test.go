package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roundWithCourt(winner Winner) *Round {
	return &Round{Courts: []*Court{twoTeamCourt(1, winner)}}
}

func TestUpdateWinnerRecordsFirstWinner(t *testing.T) {
	h := NewHistoryTracker()
	round := roundWithCourt(NoWinner)

	h.UpdateWinner(1, Team1Won, round)

	require.Equal(t, Team1Won, round.CourtByNumber(1).Winner)
	require.Equal(t, uint32(1), h.GetWinCounts()["p1"])
}

func TestUpdateWinnerChangingWinnerReversesPrevious(t *testing.T) {
	h := NewHistoryTracker()
	round := roundWithCourt(NoWinner)

	h.UpdateWinner(1, Team1Won, round)
	h.UpdateWinner(1, Team2Won, round)

	require.Equal(t, uint32(0), h.GetWinCounts()["p1"])
	require.Equal(t, uint32(1), h.GetWinCounts()["p3"])
	require.Equal(t, uint32(1), h.GetLossCounts()["p1"])
	require.Equal(t, uint32(0), h.GetLossCounts()["p3"])
}

func TestUpdateWinnerSameWinnerIsNoop(t *testing.T) {
	h := NewHistoryTracker()
	round := roundWithCourt(NoWinner)

	h.UpdateWinner(1, Team1Won, round)
	h.UpdateWinner(1, Team1Won, round)

	require.Equal(t, uint32(1), h.GetWinCounts()["p1"])
}

func TestUpdateWinnerClearingWinnerReversesContribution(t *testing.T) {
	h := NewHistoryTracker()
	round := roundWithCourt(NoWinner)

	h.UpdateWinner(1, Team1Won, round)
	h.UpdateWinner(1, NoWinner, round)

	require.Equal(t, NoWinner, round.CourtByNumber(1).Winner)
	require.Equal(t, uint32(0), h.GetWinCounts()["p1"])
}

func TestUpdateWinnerMissingCourtIsNoop(t *testing.T) {
	h := NewHistoryTracker()
	round := roundWithCourt(NoWinner)

	result := h.UpdateWinner(99, Team1Won, round)
	require.Equal(t, round, result)
	require.Empty(t, h.GetWinCounts())
}
