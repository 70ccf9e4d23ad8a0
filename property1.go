package quickcheck

import (
	"github.com/BurntSushi/quickcheck/arbitrary"
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

type propertyFunc1[A any] struct {
	arb arbitrary.Arbitrary[A]
	f   func(A) Outcome
}

// ForAll1 wraps a one-argument property body, generating and shrinking
// its argument through arb.
func ForAll1[A any](arb arbitrary.Arbitrary[A], f func(A) Outcome) Property {
	return propertyFunc1[A]{arb: arb, f: f}
}

// ForAllBool1 is the bool-returning convenience form of ForAll1.
func ForAllBool1[A any](arb arbitrary.Arbitrary[A], f func(A) bool) Property {
	return ForAll1(arb, func(a A) Outcome { return FromBool(f(a)) })
}

func (p propertyFunc1[A]) sample(r *rng.Source) trial {
	return trial1[A]{arb: p.arb, f: p.f, a: p.arb.Gen(r)}
}

type trial1[A any] struct {
	arb arbitrary.Arbitrary[A]
	f   func(A) Outcome
	a   A
}

func (t trial1[A]) run() Outcome {
	return safeRun(func() Outcome { return t.f(t.a) }).withWitness(renderTuple(t.a))
}

func (t trial1[A]) shrink() shrinkCases {
	return &shrinkCases1[A]{arb: t.arb, f: t.f, stream: t.arb.Shrink(t.a)}
}

type shrinkCases1[A any] struct {
	arb    arbitrary.Arbitrary[A]
	f      func(A) Outcome
	stream shrink.Stream[A]
}

func (s *shrinkCases1[A]) next() (trial, bool) {
	v, ok := s.stream.Next()
	if !ok {
		return nil, false
	}
	return trial1[A]{arb: s.arb, f: s.f, a: v}, true
}
