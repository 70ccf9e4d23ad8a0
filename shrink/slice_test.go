package shrink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceShrinkOfEmptyIsEmpty(t *testing.T) {
	require.Empty(t, Collect(Slice(Int[int]())(nil)))
}

func TestSliceShrinkStartsWithEmptySlice(t *testing.T) {
	vs := Collect(Slice(Int[int]())([]int{1, 2, 3}))
	require.NotEmpty(t, vs)
	require.Empty(t, vs[0])
}

func TestSliceShrinkIncludesPerElementShrinks(t *testing.T) {
	vs := Collect(Slice(Int[int]())([]int{5}))
	// block removal for a 1-element slice produces nothing beyond the
	// leading empty candidate; the rest come from shrinking the one
	// element in place.
	require.Contains(t, vs, []int{0})
	require.Contains(t, vs, []int{3})
	require.Contains(t, vs, []int{4})
}

func TestSliceShrinkRemovesBlocksBeforeRefining(t *testing.T) {
	xs := make([]int, 8)
	vs := Collect(Slice(Int[int]())(xs))
	require.Empty(t, vs[0])
	// a block-removal candidate of length 4 must appear before any
	// per-element candidate (which keeps length 8).
	foundLen4 := -1
	for i, v := range vs {
		if len(v) == 4 {
			foundLen4 = i
			break
		}
	}
	require.GreaterOrEqual(t, foundLen4, 0)
	for i := 0; i < foundLen4; i++ {
		require.NotEqual(t, 8, len(vs[i]))
	}
}
