package quickcheck

import (
	"github.com/BurntSushi/quickcheck/arbitrary"
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

type propertyFunc3[A, B, C any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	arbC arbitrary.Arbitrary[C]
	f    func(A, B, C) Outcome
}

// ForAll3 wraps a three-argument property body.
func ForAll3[A, B, C any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], arbC arbitrary.Arbitrary[C], f func(A, B, C) Outcome) Property {
	return propertyFunc3[A, B, C]{arbA: arbA, arbB: arbB, arbC: arbC, f: f}
}

// ForAllBool3 is the bool-returning convenience form of ForAll3.
func ForAllBool3[A, B, C any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], arbC arbitrary.Arbitrary[C], f func(A, B, C) bool) Property {
	return ForAll3(arbA, arbB, arbC, func(a A, b B, c C) Outcome { return FromBool(f(a, b, c)) })
}

func (p propertyFunc3[A, B, C]) sample(r *rng.Source) trial {
	return trial3[A, B, C]{
		arbA: p.arbA, arbB: p.arbB, arbC: p.arbC, f: p.f,
		a: p.arbA.Gen(r), b: p.arbB.Gen(r), c: p.arbC.Gen(r),
	}
}

type trial3[A, B, C any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	arbC arbitrary.Arbitrary[C]
	f    func(A, B, C) Outcome
	a    A
	b    B
	c    C
}

func (t trial3[A, B, C]) run() Outcome {
	return safeRun(func() Outcome { return t.f(t.a, t.b, t.c) }).withWitness(renderTuple(t.a, t.b, t.c))
}

func (t trial3[A, B, C]) shrink() shrinkCases {
	return &shrinkCases3[A, B, C]{
		arbA: t.arbA, arbB: t.arbB, arbC: t.arbC, f: t.f,
		a: t.a, b: t.b, c: t.c, streamA: t.arbA.Shrink(t.a),
	}
}

type shrinkCases3[A, B, C any] struct {
	arbA    arbitrary.Arbitrary[A]
	arbB    arbitrary.Arbitrary[B]
	arbC    arbitrary.Arbitrary[C]
	f       func(A, B, C) Outcome
	a       A
	b       B
	c       C
	streamA shrink.Stream[A]
	streamB shrink.Stream[B]
	streamC shrink.Stream[C]
	stage   int // 0=A, 1=B, 2=C
}

func (s *shrinkCases3[A, B, C]) next() (trial, bool) {
	for {
		switch s.stage {
		case 0:
			v, ok := s.streamA.Next()
			if ok {
				return trial3[A, B, C]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, f: s.f, a: v, b: s.b, c: s.c}, true
			}
			s.stage = 1
			s.streamB = s.arbB.Shrink(s.b)
		case 1:
			v, ok := s.streamB.Next()
			if ok {
				return trial3[A, B, C]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, f: s.f, a: s.a, b: v, c: s.c}, true
			}
			s.stage = 2
			s.streamC = s.arbC.Shrink(s.c)
		case 2:
			v, ok := s.streamC.Next()
			if !ok {
				return nil, false
			}
			return trial3[A, B, C]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, f: s.f, a: s.a, b: s.b, c: v}, true
		}
	}
}
