package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func twoTeamCourt(num int, winner Winner) *Court {
	return &Court{
		CourtNumber: num,
		Players:     []Player{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"}},
		Team1:       &Team{Players: []Player{{ID: "p1"}, {ID: "p2"}}},
		Team2:       &Team{Players: []Player{{ID: "p3"}, {ID: "p4"}}},
		Winner:      winner,
	}
}

func TestRecordWinsIncrementsWinAndLoss(t *testing.T) {
	h := NewHistoryTracker()
	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})

	require.Equal(t, uint32(1), h.GetWinCounts()["p1"])
	require.Equal(t, uint32(1), h.GetWinCounts()["p2"])
	require.Equal(t, uint32(1), h.GetLossCounts()["p3"])
	require.Equal(t, uint32(1), h.GetLossCounts()["p4"])
}

func TestRecordWinsIsIdempotentPerCourt(t *testing.T) {
	h := NewHistoryTracker()
	court := twoTeamCourt(1, Team1Won)
	h.RecordWins([]*Court{court})
	h.RecordWins([]*Court{court})

	require.Equal(t, uint32(1), h.GetWinCounts()["p1"])
}

func TestReverseWinForCourtIsIdempotent(t *testing.T) {
	h := NewHistoryTracker()
	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})

	h.ReverseWinForCourt(1)
	require.Equal(t, uint32(0), h.GetWinCounts()["p1"])
	require.Equal(t, uint32(0), h.GetLossCounts()["p3"])

	// Reversing again with no matching record is a silent no-op.
	h.ReverseWinForCourt(1)
	require.Equal(t, uint32(0), h.GetWinCounts()["p1"])
}

func TestReverseWinForCourtOnlyReversesMostRecentRecord(t *testing.T) {
	h := NewHistoryTracker()
	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})
	h.ClearCurrentSession()
	h.RecordWins([]*Court{twoTeamCourt(1, Team2Won)})

	h.ReverseWinForCourt(1)

	require.Equal(t, uint32(1), h.GetWinCounts()["p1"])
	require.Equal(t, uint32(0), h.GetWinCounts()["p3"])
}

func TestStateSnapshotRoundTrip(t *testing.T) {
	h := NewHistoryTracker()
	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})
	h.applyRoundCounts([]Player{{ID: "p5"}}, []*Court{twoTeamCourt(1, NoWinner)})

	snap := h.PrepareStateForSaving()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded StateSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	h2 := NewHistoryTracker()
	h2.LoadState(decoded)

	require.Equal(t, h.GetWinCounts(), h2.GetWinCounts())
	require.Equal(t, h.GetBenchCounts(), h2.GetBenchCounts())
	require.Equal(t, h.GetTeammateCounts(), h2.GetTeammateCounts())
	require.Equal(t, h.GetOpponentCounts(), h2.GetOpponentCounts())
}

func TestLoadStateWithMissingFieldsDefaultsToEmpty(t *testing.T) {
	h := NewHistoryTracker()
	h.LoadState(StateSnapshot{WinCountMap: map[string]uint32{"p1": 4}})

	require.Equal(t, uint32(4), h.GetWinCounts()["p1"])
	require.Empty(t, h.GetBenchCounts())
	require.Empty(t, h.GetTeammateCounts())
}

func TestResetHistoryClearsEverything(t *testing.T) {
	h := NewHistoryTracker()
	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})
	h.applyRoundCounts([]Player{{ID: "p5"}}, nil)

	h.ResetHistory()

	require.Empty(t, h.GetWinCounts())
	require.Empty(t, h.GetLossCounts())
	require.Empty(t, h.GetBenchCounts())
}

func TestOnStateChangeFiresOnMutation(t *testing.T) {
	h := NewHistoryTracker()
	calls := 0
	unsubscribe := h.OnStateChange(func() { calls++ })

	h.RecordWins([]*Court{twoTeamCourt(1, Team1Won)})
	require.Equal(t, 1, calls)

	unsubscribe()
	h.RecordWins([]*Court{twoTeamCourt(2, Team1Won)})
	require.Equal(t, 1, calls)
}

func TestApplyRoundCountsTeammateAndOpponentPairs(t *testing.T) {
	h := NewHistoryTracker()
	court := twoTeamCourt(1, NoWinner)
	h.applyRoundCounts(nil, []*Court{court})

	require.Equal(t, uint32(1), h.GetTeammateCounts()[PairKey("p1", "p2")])
	require.Equal(t, uint32(1), h.GetTeammateCounts()[PairKey("p3", "p4")])
	require.Equal(t, uint32(1), h.GetOpponentCounts()[PairKey("p1", "p3")])
	require.Equal(t, uint32(1), h.GetOpponentCounts()[PairKey("p2", "p4")])
}

func TestApplyRoundCountsSinglesCourtIncrementsSingleCount(t *testing.T) {
	h := NewHistoryTracker()
	court := &Court{
		CourtNumber: 1,
		Players:     []Player{{ID: "p1"}, {ID: "p2"}},
		Team1:       &Team{Players: []Player{{ID: "p1"}}},
		Team2:       &Team{Players: []Player{{ID: "p2"}}},
	}
	h.applyRoundCounts(nil, []*Court{court})

	require.Equal(t, uint32(1), h.GetSingleCounts()["p1"])
	require.Equal(t, uint32(1), h.GetSingleCounts()["p2"])
}
