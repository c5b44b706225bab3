package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seed(n int64) *int64 { return &n }

func TestGenerateAssignsAllPresentPlayers(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	round, err := e.Generate(playersN(8), 2, nil, nil)

	require.NoError(t, err)
	require.Len(t, round.Benched, 0)

	placed := 0
	for _, c := range round.Courts {
		placed += len(c.Players)
	}
	require.Equal(t, 8, placed)
}

func TestGenerateBenchesOverflowPlayers(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	round, err := e.Generate(playersN(10), 2, nil, nil)

	require.NoError(t, err)
	require.Len(t, round.Benched, 2)
}

func TestGenerateIgnoresAbsentPlayers(t *testing.T) {
	players := playersN(8)
	players[0].IsPresent = false

	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	round, err := e.Generate(players, 2, nil, nil)

	require.NoError(t, err)
	for _, c := range round.Courts {
		for _, p := range c.Players {
			require.NotEqual(t, players[0].ID, p.ID)
		}
	}
}

func TestGenerateWithManualPinReservesCourtOne(t *testing.T) {
	players := playersN(8)
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})

	round, err := e.Generate(players, 2, &ManualPin{Players: players[:4]}, nil)
	require.NoError(t, err)

	court1 := round.CourtByNumber(1)
	require.NotNil(t, court1)
	require.True(t, court1.WasManuallyAssigned)

	for _, c := range round.Courts {
		if c.CourtNumber != 1 {
			require.GreaterOrEqual(t, c.CourtNumber, 2)
		}
	}
}

func TestGenerateForceBenchExcludesPlayer(t *testing.T) {
	players := playersN(8)
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})

	round, err := e.Generate(players, 1, nil, map[string]bool{players[0].ID: true})
	require.NoError(t, err)

	found := false
	for _, p := range round.Benched {
		if p.ID == players[0].ID {
			found = true
		}
	}
	require.True(t, found)
}

func TestGenerateAccumulatesHistoryAcrossRounds(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	players := playersN(8)

	_, err := e.Generate(players, 2, nil, nil)
	require.NoError(t, err)

	teammateTotal := func() uint32 {
		var total uint32
		for _, v := range e.GetTeammateCounts() {
			total += v
		}
		return total
	}
	require.Greater(t, teammateTotal(), uint32(0))

	firstTotal := teammateTotal()
	_, err = e.Generate(players, 2, nil, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, teammateTotal(), firstTotal)
}

func TestGenerateDoesNotRecountWinnerFromPreviousRound(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	players := playersN(4)

	round, err := e.Generate(players, 1, nil, nil)
	require.NoError(t, err)

	court := round.Courts[0]
	_, err = e.UpdateWinner(court.CourtNumber, Team1Won)
	require.NoError(t, err)

	// UpdateWinner records the win at once; the next Generate re-applies the
	// held round's winners but must not count this one a second time.
	winner := court.Team1.Players[0].ID
	require.Equal(t, uint32(1), e.GetWinCounts()[winner])

	_, err = e.Generate(players, 1, nil, nil)
	require.NoError(t, err)

	require.Equal(t, uint32(1), e.GetWinCounts()[winner])
}

func TestUpdateWinnerRejectsNonPositiveCourtNumber(t *testing.T) {
	e := New(Options{RNGSeed: seed(1)})
	_, err := e.UpdateWinner(0, Team1Won)
	require.Error(t, err)
}

func TestResetHistoryClearsEngineState(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	players := playersN(4)
	_, err := e.Generate(players, 1, nil, nil)
	require.NoError(t, err)

	e.ResetHistory()
	require.Empty(t, e.GetTeammateCounts())
	require.Empty(t, e.GetBenchCounts())
}

func TestStateSnapshotRoundTripsThroughEngine(t *testing.T) {
	e := New(Options{Variant: VariantMonteCarlo, MCSamples: 20, RNGSeed: seed(1)})
	players := playersN(4)
	_, err := e.Generate(players, 1, nil, nil)
	require.NoError(t, err)

	snap := e.PrepareStateForSaving()
	require.Equal(t, "mc", snap.EngineType)

	e2 := New(Options{RNGSeed: seed(2)})
	e2.LoadState(snap)
	require.Equal(t, e.GetTeammateCounts(), e2.GetTeammateCounts())
}

func TestGenerateWithZeroCourtsBenchesEveryone(t *testing.T) {
	e := New(Options{RNGSeed: seed(1)})
	round, err := e.Generate(playersN(4), 0, nil, nil)
	require.NoError(t, err)
	require.Empty(t, round.Courts)
	require.Len(t, round.Benched, 4)
}

func TestGenerateWithNoPresentPlayersReturnsEmptyRound(t *testing.T) {
	players := playersN(4)
	for i := range players {
		players[i].IsPresent = false
	}

	e := New(Options{RNGSeed: seed(1)})
	round, err := e.Generate(players, 1, nil, nil)
	require.NoError(t, err)
	require.Empty(t, round.Courts)
}

func TestGenerateRejectsNegativeCourtCount(t *testing.T) {
	e := New(Options{RNGSeed: seed(1)})
	_, err := e.Generate(playersN(4), -1, nil, nil)
	require.Error(t, err)
}
