// internal/engine/optimizer_cg.go
// Conflict-Graph Greedy variant: deterministic construction from a conflict
// graph weighted by prior teammate/opponent counts.

package engine

import "sort"

// conflictGreedyVariant builds a conflict graph over on-court players (edge
// weight = teammateCount + opponentCount between them) and greedily places
// the highest-conflict player onto the court that currently minimizes its
// total conflict with already-placed players. Ties in player selection are
// broken by (benchCount asc, playerId asc); ties in court
// selection are broken by lowest court index, since courts carry no
// bench-count of their own.
type conflictGreedyVariant struct {
	cost        costModel
	rng         *RNG
	benchCounts countMap
}

func (v *conflictGreedyVariant) Optimize(onCourtPlayers []Player, startNumber int) []*Court {
	n := len(onCourtPlayers)
	if n == 0 {
		return nil
	}

	edgeWeight := func(a, b string) uint32 {
		return v.cost.teammate.get(PairKey(a, b)) + v.cost.opponent.get(PairKey(a, b))
	}

	// Conflict score: total edge weight to every other on-court player.
	scores := make(map[string]uint32, n)
	for _, p := range onCourtPlayers {
		var s uint32
		for _, q := range onCourtPlayers {
			if p.ID == q.ID {
				continue
			}
			s += edgeWeight(p.ID, q.ID)
		}
		scores[p.ID] = s
	}

	order := make([]Player, n)
	copy(order, onCourtPlayers)
	sort.SliceStable(order, func(i, j int) bool {
		if scores[order[i].ID] != scores[order[j].ID] {
			return scores[order[i].ID] > scores[order[j].ID]
		}
		if v.benchCounts.get(order[i].ID) != v.benchCounts.get(order[j].ID) {
			return v.benchCounts.get(order[i].ID) < v.benchCounts.get(order[j].ID)
		}
		return order[i].ID < order[j].ID
	})

	capacities := courtCapacities(n)
	slots := make([][]Player, len(capacities))

	totalCapacity := 0
	for _, c := range capacities {
		totalCapacity += c
	}
	if totalCapacity < len(order) {
		order = order[:totalCapacity]
	}

	for _, p := range order {
		bestCourt := -1
		var bestWeight uint32
		for ci, cap := range capacities {
			if len(slots[ci]) >= cap {
				continue
			}
			var w uint32
			for _, placed := range slots[ci] {
				w += edgeWeight(p.ID, placed.ID)
			}
			if bestCourt == -1 || w < bestWeight {
				bestCourt = ci
				bestWeight = w
			}
		}
		slots[bestCourt] = append(slots[bestCourt], p)
	}

	var courts []*Court
	courtNumber := startNumber
	for _, players := range slots {
		switch len(players) {
		case 4:
			var group [4]Player
			copy(group[:], players)
			split := chooseSplit(group, v.cost)
			courts = append(courts, &Court{
				CourtNumber: courtNumber,
				Players:     append(append([]Player{}, split.team1...), split.team2...),
				Team1:       &Team{Players: split.team1},
				Team2:       &Team{Players: split.team2},
			})
		case 2:
			courts = append(courts, &Court{
				CourtNumber: courtNumber,
				Players:     players,
				Team1:       &Team{Players: players[:1]},
				Team2:       &Team{Players: players[1:]},
			})
		case 3:
			waiting := players[2]
			courts = append(courts, &Court{
				CourtNumber: courtNumber,
				Players:     players,
				Team1:       &Team{Players: players[:1]},
				Team2:       &Team{Players: players[1:2]},
				Waiting:     &waiting,
			})
		default:
			continue
		}
		courtNumber++
	}

	return courts
}

// courtCapacities splits n players into court capacities of 4, with a
// final court of 2 or 3 if there's a remainder (1 is dropped, mirroring
// generateCandidate's handling of a leftover single player).
func courtCapacities(n int) []int {
	full := n / 4
	rem := n % 4
	caps := make([]int, 0, full+1)
	for i := 0; i < full; i++ {
		caps = append(caps, 4)
	}
	if rem == 2 || rem == 3 {
		caps = append(caps, rem)
	}
	return caps
}
