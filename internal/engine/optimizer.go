// internal/engine/optimizer.go
// Optimizer variants: the shared interface all three implementations
// satisfy. Each reads the same count maps via the cost model; none
// mutate the HistoryTracker themselves — the Engine commits
// bench/teammate/opponent/single counts once, after the chosen variant
// returns.

package engine

// Variant is one of {MC, SA, CG}: interchangeable optimizer implementations
// sharing the cost function and history.
type Variant interface {
	// Optimize returns the best courts it can find for onCourtPlayers,
	// numbered sequentially starting at startNumber.
	Optimize(onCourtPlayers []Player, startNumber int) []*Court
}

// newVariant constructs the configured Variant, closing over the cost model
// and RNG the facade owns.
func newVariant(vt VariantType, opts Options, cost costModel, rng *RNG, benchCounts countMap) Variant {
	switch vt {
	case VariantMonteCarlo:
		return &monteCarloVariant{samples: opts.MCSamples, cost: cost, rng: rng}
	case VariantConflictGreedy:
		return &conflictGreedyVariant{cost: cost, rng: rng, benchCounts: benchCounts}
	case VariantSimulatedAnnealing:
		fallthrough
	default:
		return &simulatedAnnealingVariant{
			iterations: opts.SAIterations,
			t0:         opts.SAT0,
			decay:      opts.SADecay,
			floor:      opts.SAFloor,
			cost:       cost,
			rng:        rng,
		}
	}
}

// cloneCourts deep-copies a court slice so optimizers can mutate a working
// copy without aliasing the caller's candidate.
func cloneCourts(courts []*Court) []*Court {
	out := make([]*Court, len(courts))
	for i, c := range courts {
		cp := *c
		cp.Players = append([]Player{}, c.Players...)
		if c.Team1 != nil {
			t := Team{Players: append([]Player{}, c.Team1.Players...)}
			cp.Team1 = &t
		}
		if c.Team2 != nil {
			t := Team{Players: append([]Player{}, c.Team2.Players...)}
			cp.Team2 = &t
		}
		out[i] = &cp
	}
	return out
}

// totalCostOf sums the cost of every court that has both teams populated.
func totalCostOf(courts []*Court, cost costModel) float64 {
	var total float64
	for _, c := range courts {
		if !c.HasTeams() {
			continue
		}
		total += cost.courtCost(c.Team1.Players, c.Team2.Players)
	}
	return total
}
