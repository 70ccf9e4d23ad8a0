package shrink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntShrinkTable(t *testing.T) {
	sh := Int[int]()
	require.Equal(t, []int{0, 3, 4}, Collect(sh(5)))
	require.Equal(t, []int{0, 5, -3, -4}, Collect(sh(-5)))
	require.Empty(t, Collect(sh(0)))
	require.Equal(t, []int{0}, Collect(sh(-1)))
	require.Equal(t, []int{0}, Collect(sh(1)))
}

func TestUintShrinkTable(t *testing.T) {
	sh := Uint[uint]()
	require.Equal(t, []uint{0, 3, 4}, Collect(sh(5)))
	require.Empty(t, Collect(sh(0)))
}

func TestFloatShrinkHitsZero(t *testing.T) {
	sh := Float[float64]()
	vs := Collect(sh(8.5))
	require.NotEmpty(t, vs)
	require.Equal(t, float64(0), vs[len(vs)-1])
	// truncation is tried before halving begins.
	require.Equal(t, float64(8), vs[0])
}

func TestFloatShrinkOfZeroIsEmpty(t *testing.T) {
	require.Empty(t, Collect(Float[float64]()(0)))
}

func TestBoolShrink(t *testing.T) {
	require.Equal(t, []bool{false}, Collect(Bool()(true)))
	require.Empty(t, Collect(Bool()(false)))
}

func TestRuneShrinksTowardA(t *testing.T) {
	require.Empty(t, Collect(Rune()('a')))
	vs := Collect(Rune()('d'))
	require.Contains(t, vs, rune('a'))
}

func TestStringShrinkTable(t *testing.T) {
	sh := String()
	vsA := Collect(sh("A"))
	require.Equal(t, "", vsA[0])

	vsAB := Collect(sh("AB"))
	require.Contains(t, vsAB, "")
}
