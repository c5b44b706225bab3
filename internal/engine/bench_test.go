package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seededRNG(seed int64) *RNG {
	return NewRNG(&seed)
}

func playersN(n int) []Player {
	out := make([]Player, n)
	for i := 0; i < n; i++ {
		out[i] = Player{ID: string(rune('a' + i)), IsPresent: true}
	}
	return out
}

func TestSelectBenchCapacityExact(t *testing.T) {
	present := playersN(8)
	bench := selectBench(present, 2, make(countMap), seededRNG(1))
	require.Empty(t, bench)
}

func TestSelectBenchOverCapacity(t *testing.T) {
	present := playersN(10)
	bench := selectBench(present, 2, make(countMap), seededRNG(1))
	require.Len(t, bench, 2)
}

func TestSelectBenchOddOnCourtBenchesOneMore(t *testing.T) {
	present := playersN(7)
	bench := selectBench(present, 2, make(countMap), seededRNG(1))
	// capacity=8, raw bench=0, onCourt=7 is odd so one more gets benched.
	require.Len(t, bench, 1)
}

func TestSelectBenchPrefersLowestBenchCount(t *testing.T) {
	present := playersN(5)
	counts := make(countMap)
	counts.increment("a", 5)
	counts.increment("b", 5)
	counts.increment("c", 5)
	counts.increment("d", 5)
	// "e" has bench count 0, so with 1 court (capacity 4, bench=1, onCourt=4 even)
	// the single benched player must be the lowest-count one: "e".
	bench := selectBench(present, 1, counts, seededRNG(1))
	require.Len(t, bench, 1)
	require.Equal(t, "e", bench[0].ID)
}

func TestSelectBenchZeroCourtsBenchesEveryone(t *testing.T) {
	present := playersN(4)
	bench := selectBench(present, 0, make(countMap), seededRNG(1))
	require.Len(t, bench, 4)
}
