package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairKeyCanonical(t *testing.T) {
	require.Equal(t, PairKey("a", "b"), PairKey("b", "a"))
	require.Equal(t, "a|b", PairKey("a", "b"))
	require.Equal(t, "a|b", PairKey("b", "a"))
}

func TestCountMapSaturatesAtZero(t *testing.T) {
	m := make(countMap)
	m.increment("p1", 1)
	require.Equal(t, uint32(1), m.get("p1"))

	m.decrement("p1", 5)
	require.Equal(t, uint32(0), m.get("p1"))

	m.decrement("missing", 1)
	require.Equal(t, uint32(0), m.get("missing"))
}

func TestCountMapIncrementZeroIsNoop(t *testing.T) {
	m := make(countMap)
	m.increment("p1", 0)
	_, ok := m["p1"]
	require.False(t, ok)
}

func TestCountMapCloneIsIndependent(t *testing.T) {
	m := make(countMap)
	m.increment("p1", 3)
	c := m.clone()
	c.increment("p1", 1)
	require.Equal(t, uint32(3), m.get("p1"))
	require.Equal(t, uint32(4), c.get("p1"))
}
