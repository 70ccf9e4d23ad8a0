package shrink

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Bool shrinks true to false; false has no simpler value.
func Bool() Shrinker[bool] {
	return func(v bool) Stream[bool] {
		if v {
			return Single(false)
		}
		return Empty[bool]()
	}
}

func half[T constraints.Integer](x T) T { return x / 2 }

func absInt[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// signedState walks x toward 0 by repeated halving, same recurrence as
// the unsigned case but tracking the sign of x.
type signedState[T constraints.Signed] struct {
	x, i T
}

func (s *signedState[T]) next() (T, bool) {
	d := s.x - s.i
	if absInt(d) < absInt(s.x) {
		s.i = half(s.i)
		return d, true
	}
	var zero T
	return zero, false
}

// Int shrinks toward 0. It first tries 0; an x below -1 then tries |x|
// (skipped for the minimum value of T, whose negation overflows). After
// that come x - x/2, x - x/4, ..., x - 1: each candidate moves x toward 0
// by a halving amount, so the stream ends at the value one step closer to
// 0 than x, not at 0.
func Int[T constraints.Signed]() Shrinker[T] {
	return func(x T) Stream[T] {
		if x == 0 {
			return Empty[T]()
		}
		i := half(x)
		head := Single(T(0))
		if i < 0 && absInt(x) > 0 {
			head = FromSlice([]T{0, absInt(x)})
		}
		state := &signedState[T]{x: x, i: i}
		return Concat(head, funcStream[T]{next: state.next})
	}
}

type unsignedState[T constraints.Unsigned] struct {
	x, i T
}

func (s *unsignedState[T]) next() (T, bool) {
	d := s.x - s.i
	if d < s.x {
		s.i = half(s.i)
		return d, true
	}
	var zero T
	return zero, false
}

// Uint shrinks toward 0 by halving the distance to 0 each step.
func Uint[T constraints.Unsigned]() Shrinker[T] {
	return func(x T) Stream[T] {
		if x == 0 {
			return Empty[T]()
		}
		state := &unsignedState[T]{x: x, i: half(x)}
		return Concat(Single(T(0)), funcStream[T]{next: state.next})
	}
}

type floatPhase int

const (
	floatPhaseTrunc floatPhase = iota
	floatPhaseHalving
	floatPhaseZero
	floatPhaseDone
)

// floatShrinkThreshold is where the halving phase gives up and emits a
// final 0.0 instead of continuing indefinitely toward it.
const floatShrinkThreshold = 1e-6

type floatShrinkState[T constraints.Float] struct {
	phase floatPhase
	v     T
	trunc T
}

func (s *floatShrinkState[T]) next() (T, bool) {
	for {
		switch s.phase {
		case floatPhaseTrunc:
			s.phase = floatPhaseHalving
			return s.trunc, true
		case floatPhaseHalving:
			s.v = s.v / 2
			if math.Abs(float64(s.v)) < floatShrinkThreshold {
				s.phase = floatPhaseZero
				continue
			}
			return s.v, true
		case floatPhaseZero:
			s.phase = floatPhaseDone
			return 0, true
		default:
			var zero T
			return zero, false
		}
	}
}

// Float shrinks toward 0.0: it first tries truncating toward an integer
// (if that differs from x), then halves repeatedly until the magnitude
// drops below a threshold, then finally 0.0. NaN and infinities do not
// shrink.
func Float[T constraints.Float]() Shrinker[T] {
	return func(x T) Stream[T] {
		if x == 0 || math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return Empty[T]()
		}
		trunc := T(math.Trunc(float64(x)))
		phase := floatPhaseHalving
		if trunc != x {
			phase = floatPhaseTrunc
		}
		st := &floatShrinkState[T]{phase: phase, v: x, trunc: trunc}
		return funcStream[T]{next: st.next}
	}
}

// canonicalRune is the minimal rune a Rune shrinker converges to.
const canonicalRune = 'a'

// Rune shrinks toward the canonical lowercase 'a' by halving the distance
// between the code point and 'a', reusing Int's convergence over the
// signed difference.
func Rune() Shrinker[rune] {
	intShrink := Int[int32]()
	return func(r rune) Stream[rune] {
		if r == canonicalRune {
			return Empty[rune]()
		}
		diff := int32(r) - int32(canonicalRune)
		return Map(intShrink(diff), func(d int32) rune { return rune(d + canonicalRune) })
	}
}

// String shrinks by treating the string as a slice of runes: first
// shorter strings, then strings with one rune shrunk toward 'a'.
func String() Shrinker[string] {
	runes := Slice(Rune())
	return func(s string) Stream[string] {
		return Map(runes([]rune(s)), func(rs []rune) string { return string(rs) })
	}
}
