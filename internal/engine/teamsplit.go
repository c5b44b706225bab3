// internal/engine/teamsplit.go
// Team-split chooser: for a fixed 4-player court, pick the partition
// into two pairs that minimizes cost.

package engine

// splitResult is the outcome of choosing the cheapest of the three ways to
// split 4 players into two teams of 2.
type splitResult struct {
	team1 []Player
	team2 []Player
	cost  float64
}

// chooseSplit enumerates the three distinct pairings of 4 ordered players
// and returns the minimum-cost one. Ties are broken by
// enumeration order: S1 < S2 < S3.
func chooseSplit(players [4]Player, cost costModel) splitResult {
	candidates := [3]splitResult{
		{team1: []Player{players[0], players[1]}, team2: []Player{players[2], players[3]}},
		{team1: []Player{players[0], players[2]}, team2: []Player{players[1], players[3]}},
		{team1: []Player{players[0], players[3]}, team2: []Player{players[1], players[2]}},
	}

	best := 0
	for i := range candidates {
		candidates[i].cost = cost.courtCost(candidates[i].team1, candidates[i].team2)
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].cost < candidates[best].cost {
			best = i
		}
	}
	return candidates[best]
}
