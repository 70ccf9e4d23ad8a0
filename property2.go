package quickcheck

import (
	"github.com/BurntSushi/quickcheck/arbitrary"
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

type propertyFunc2[A, B any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	f    func(A, B) Outcome
}

// ForAll2 wraps a two-argument property body.
func ForAll2[A, B any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], f func(A, B) Outcome) Property {
	return propertyFunc2[A, B]{arbA: arbA, arbB: arbB, f: f}
}

// ForAllBool2 is the bool-returning convenience form of ForAll2.
func ForAllBool2[A, B any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], f func(A, B) bool) Property {
	return ForAll2(arbA, arbB, func(a A, b B) Outcome { return FromBool(f(a, b)) })
}

func (p propertyFunc2[A, B]) sample(r *rng.Source) trial {
	return trial2[A, B]{arbA: p.arbA, arbB: p.arbB, f: p.f, a: p.arbA.Gen(r), b: p.arbB.Gen(r)}
}

type trial2[A, B any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	f    func(A, B) Outcome
	a    A
	b    B
}

func (t trial2[A, B]) run() Outcome {
	return safeRun(func() Outcome { return t.f(t.a, t.b) }).withWitness(renderTuple(t.a, t.b))
}

func (t trial2[A, B]) shrink() shrinkCases {
	return &shrinkCases2[A, B]{arbA: t.arbA, arbB: t.arbB, f: t.f, a: t.a, b: t.b, streamA: t.arbA.Shrink(t.a)}
}

// shrinkCases2 shrinks A to completion before touching B, matching the
// component-order rule used throughout (earlier arguments shrink first).
type shrinkCases2[A, B any] struct {
	arbA    arbitrary.Arbitrary[A]
	arbB    arbitrary.Arbitrary[B]
	f       func(A, B) Outcome
	a       A
	b       B
	streamA shrink.Stream[A]
	streamB shrink.Stream[B]
	onB     bool
}

func (s *shrinkCases2[A, B]) next() (trial, bool) {
	if !s.onB {
		v, ok := s.streamA.Next()
		if ok {
			return trial2[A, B]{arbA: s.arbA, arbB: s.arbB, f: s.f, a: v, b: s.b}, true
		}
		s.onB = true
		s.streamB = s.arbB.Shrink(s.b)
	}
	v, ok := s.streamB.Next()
	if !ok {
		return nil, false
	}
	return trial2[A, B]{arbA: s.arbA, arbB: s.arbB, f: s.f, a: s.a, b: v}, true
}
