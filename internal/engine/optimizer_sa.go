// internal/engine/optimizer_sa.go
// Simulated Annealing variant: starts from one Monte Carlo candidate, then
// proposes and accepts/rejects neighbors under a decaying temperature.

package engine

import "math"

// simulatedAnnealingVariant implements simulated annealing with defaults
// iterations=5000, T0=10, decay=0.999, floor=0.01. Each iteration proposes
// one of two neighbor kinds: a swap of two on-court players between courts,
// or a team-split flip within one court.
type simulatedAnnealingVariant struct {
	iterations int
	t0         float64
	decay      float64
	floor      float64
	cost       costModel
	rng        *RNG
}

func (v *simulatedAnnealingVariant) Optimize(onCourtPlayers []Player, startNumber int) []*Court {
	if len(onCourtPlayers) == 0 {
		return nil
	}

	seed := (&monteCarloVariant{samples: 1, cost: v.cost, rng: v.rng}).Optimize(onCourtPlayers, startNumber)
	current := cloneCourts(seed)
	currentCost := totalCostOf(current, v.cost)

	best := cloneCourts(current)
	bestCost := currentCost

	temperature := v.t0
	iterations := v.iterations
	if iterations <= 0 {
		iterations = 1
	}

	for i := 0; i < iterations; i++ {
		neighbor, delta := v.proposeNeighbor(current, currentCost)

		if delta <= 0 || v.rng.Float64() < math.Exp(-delta/temperature) {
			current = neighbor
			currentCost += delta

			if currentCost < bestCost {
				best = cloneCourts(current)
				bestCost = currentCost
			}
		}

		temperature *= v.decay
		if temperature < v.floor {
			temperature = v.floor
		}
	}

	return best
}

// proposeNeighbor returns a mutated copy of courts plus the cost delta
// versus currentCost. It never mutates the input.
func (v *simulatedAnnealingVariant) proposeNeighbor(courts []*Court, currentCost float64) ([]*Court, float64) {
	neighbor := cloneCourts(courts)

	doubles := doublesCourtIndexes(neighbor)
	if len(doubles) == 0 {
		return neighbor, 0
	}

	if v.rng.Intn(2) == 0 && len(doubles) >= 2 {
		v.swapPlayers(neighbor, doubles)
	} else {
		v.flipSplit(neighbor, doubles)
	}

	return neighbor, totalCostOf(neighbor, v.cost) - currentCost
}

// swapPlayers exchanges one random player between two random doubles
// courts, keeping each court's team assignment slot, then re-derives the
// cheapest split for both affected courts.
func (v *simulatedAnnealingVariant) swapPlayers(courts []*Court, doubles []int) {
	ci := doubles[v.rng.Intn(len(doubles))]
	cj := doubles[v.rng.Intn(len(doubles))]
	for cj == ci {
		cj = doubles[v.rng.Intn(len(doubles))]
	}

	pi := v.rng.Intn(4)
	pj := v.rng.Intn(4)

	courts[ci].Players[pi], courts[cj].Players[pj] = courts[cj].Players[pj], courts[ci].Players[pi]

	resplit(courts[ci], v.cost)
	resplit(courts[cj], v.cost)
}

// flipSplit moves a single random doubles court to one of the two other
// pairings of its four players, chosen at random.
func (v *simulatedAnnealingVariant) flipSplit(courts []*Court, doubles []int) {
	c := courts[doubles[v.rng.Intn(len(doubles))]]
	if !c.HasTeams() || len(c.Team1.Players) != 2 || len(c.Team2.Players) != 2 {
		return
	}
	a, b := c.Team1.Players[0], c.Team1.Players[1]
	x, y := c.Team2.Players[0], c.Team2.Players[1]
	if v.rng.Intn(2) == 0 {
		x, y = y, x
	}
	c.Team1 = &Team{Players: []Player{a, x}}
	c.Team2 = &Team{Players: []Player{b, y}}
	c.Players = []Player{a, x, b, y}
}

func resplit(c *Court, cost costModel) {
	if len(c.Players) != 4 {
		return
	}
	var group [4]Player
	copy(group[:], c.Players)
	split := chooseSplit(group, cost)
	c.Team1 = &Team{Players: split.team1}
	c.Team2 = &Team{Players: split.team2}
}

func doublesCourtIndexes(courts []*Court) []int {
	var idx []int
	for i, c := range courts {
		if len(c.Players) == 4 {
			idx = append(idx, i)
		}
	}
	return idx
}
