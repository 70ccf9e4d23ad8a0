package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	a.SetSize(10)
	b.SetSize(10)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.Bool(), b.Bool())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	var same int
	const n = 50
	for i := 0; i < n; i++ {
		if a.Intn(1<<30) == b.Intn(1<<30) {
			same++
		}
	}
	require.Less(t, same, n)
}

func TestIntRangeInclusiveBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 200; i++ {
		v := s.IntRange(-3, 3)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
	}
}

func TestIntRangeSwapsBackwardsBounds(t *testing.T) {
	s := New(7)
	v := s.IntRange(5, 1)
	require.GreaterOrEqual(t, v, 1)
	require.LessOrEqual(t, v, 5)
}

func TestSetSizeClampsNegative(t *testing.T) {
	s := New(1)
	s.SetSize(-5)
	require.Equal(t, 0, s.Size())
}

func TestChoose(t *testing.T) {
	s := New(3)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Choose(s, items)] = true
	}
	require.Len(t, seen, 3)
}
