// internal/engine/candidate.go
// Candidate generator: produce one full-round assignment from a
// shuffled on-court list.

package engine

// candidate is one full proposed assignment plus its total cost.
type candidate struct {
	courts    []*Court
	totalCost float64
}

// generateCandidate shuffles onCourtPlayers and assembles courts numbered
// sequentially starting at startNumber, 4 players at a time, splitting each
// group of 4 with the team-split chooser. A remainder of 2 becomes a
// singles court; a remainder of 3 becomes singles + one waiting player
// (only reachable in degenerate inputs — the bench selector normally keeps
// the on-court count even). A remainder of 1 is discarded: it should have
// been benched upstream.
func generateCandidate(onCourtPlayers []Player, startNumber int, cost costModel, rng *RNG) candidate {
	shuffled := make([]Player, len(onCourtPlayers))
	copy(shuffled, onCourtPlayers)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var out candidate
	courtNumber := startNumber
	i := 0
	for ; i+4 <= len(shuffled); i += 4 {
		var group [4]Player
		copy(group[:], shuffled[i:i+4])
		split := chooseSplit(group, cost)
		out.courts = append(out.courts, &Court{
			CourtNumber: courtNumber,
			Players:     append(append([]Player{}, split.team1...), split.team2...),
			Team1:       &Team{Players: split.team1},
			Team2:       &Team{Players: split.team2},
		})
		out.totalCost += split.cost
		courtNumber++
	}

	remainder := len(shuffled) - i
	switch remainder {
	case 2:
		a, b := shuffled[i], shuffled[i+1]
		c := cost.courtCost([]Player{a}, []Player{b})
		out.courts = append(out.courts, &Court{
			CourtNumber: courtNumber,
			Players:     []Player{a, b},
			Team1:       &Team{Players: []Player{a}},
			Team2:       &Team{Players: []Player{b}},
		})
		out.totalCost += c
		courtNumber++
	case 3:
		a, b, w := shuffled[i], shuffled[i+1], shuffled[i+2]
		c := cost.courtCost([]Player{a}, []Player{b})
		waiting := w
		out.courts = append(out.courts, &Court{
			CourtNumber: courtNumber,
			Players:     []Player{a, b, w},
			Team1:       &Team{Players: []Player{a}},
			Team2:       &Team{Players: []Player{b}},
			Waiting:     &waiting,
		})
		out.totalCost += c
		courtNumber++
	}

	return out
}
