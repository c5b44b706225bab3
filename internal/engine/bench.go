// internal/engine/bench.go
// Bench selector: given present players and a target on-court count,
// select who sits out to equalize bench history.

package engine

import (
	"sort"

	"badminton-court-engine/internal/utils"
)

// selectBench computes the bench set. present must already
// exclude any pinned or force-benched ids. The returned bench slice
// preserves the sort order (lowest benchCount first).
func selectBench(present []Player, numberOfCourts int, benchCounts countMap, rng *RNG) []Player {
	capacity := numberOfCourts * 4
	bench := utils.MaxInt(len(present)-capacity, 0)

	onCourt := len(present) - bench
	if onCourt%2 == 1 {
		bench++
	}

	bench = utils.MaxInt(bench, 0)
	bench = utils.MinInt(bench, len(present))
	if bench == 0 {
		return nil
	}

	ordered := make([]Player, len(present))
	copy(ordered, present)

	// Stable-random tiebreak: shuffle first, then stable-sort by bench
	// count ascending. Equal-count players keep their shuffled order.
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return benchCounts.get(ordered[i].ID) < benchCounts.get(ordered[j].ID)
	})

	result := make([]Player, bench)
	copy(result, ordered[:bench])
	return result
}
