package quickcheck

import (
	"github.com/BurntSushi/quickcheck/arbitrary"
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

type propertyFunc4[A, B, C, D any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	arbC arbitrary.Arbitrary[C]
	arbD arbitrary.Arbitrary[D]
	f    func(A, B, C, D) Outcome
}

// ForAll4 wraps a four-argument property body.
func ForAll4[A, B, C, D any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], arbC arbitrary.Arbitrary[C], arbD arbitrary.Arbitrary[D], f func(A, B, C, D) Outcome) Property {
	return propertyFunc4[A, B, C, D]{arbA: arbA, arbB: arbB, arbC: arbC, arbD: arbD, f: f}
}

// ForAllBool4 is the bool-returning convenience form of ForAll4.
func ForAllBool4[A, B, C, D any](arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], arbC arbitrary.Arbitrary[C], arbD arbitrary.Arbitrary[D], f func(A, B, C, D) bool) Property {
	return ForAll4(arbA, arbB, arbC, arbD, func(a A, b B, c C, d D) Outcome { return FromBool(f(a, b, c, d)) })
}

func (p propertyFunc4[A, B, C, D]) sample(r *rng.Source) trial {
	return trial4[A, B, C, D]{
		arbA: p.arbA, arbB: p.arbB, arbC: p.arbC, arbD: p.arbD, f: p.f,
		a: p.arbA.Gen(r), b: p.arbB.Gen(r), c: p.arbC.Gen(r), d: p.arbD.Gen(r),
	}
}

type trial4[A, B, C, D any] struct {
	arbA arbitrary.Arbitrary[A]
	arbB arbitrary.Arbitrary[B]
	arbC arbitrary.Arbitrary[C]
	arbD arbitrary.Arbitrary[D]
	f    func(A, B, C, D) Outcome
	a    A
	b    B
	c    C
	d    D
}

func (t trial4[A, B, C, D]) run() Outcome {
	return safeRun(func() Outcome { return t.f(t.a, t.b, t.c, t.d) }).withWitness(renderTuple(t.a, t.b, t.c, t.d))
}

func (t trial4[A, B, C, D]) shrink() shrinkCases {
	return &shrinkCases4[A, B, C, D]{
		arbA: t.arbA, arbB: t.arbB, arbC: t.arbC, arbD: t.arbD, f: t.f,
		a: t.a, b: t.b, c: t.c, d: t.d, streamA: t.arbA.Shrink(t.a),
	}
}

type shrinkCases4[A, B, C, D any] struct {
	arbA    arbitrary.Arbitrary[A]
	arbB    arbitrary.Arbitrary[B]
	arbC    arbitrary.Arbitrary[C]
	arbD    arbitrary.Arbitrary[D]
	f       func(A, B, C, D) Outcome
	a       A
	b       B
	c       C
	d       D
	streamA shrink.Stream[A]
	streamB shrink.Stream[B]
	streamC shrink.Stream[C]
	streamD shrink.Stream[D]
	stage   int // 0=A, 1=B, 2=C, 3=D
}

func (s *shrinkCases4[A, B, C, D]) next() (trial, bool) {
	for {
		switch s.stage {
		case 0:
			v, ok := s.streamA.Next()
			if ok {
				return trial4[A, B, C, D]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, arbD: s.arbD, f: s.f, a: v, b: s.b, c: s.c, d: s.d}, true
			}
			s.stage = 1
			s.streamB = s.arbB.Shrink(s.b)
		case 1:
			v, ok := s.streamB.Next()
			if ok {
				return trial4[A, B, C, D]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, arbD: s.arbD, f: s.f, a: s.a, b: v, c: s.c, d: s.d}, true
			}
			s.stage = 2
			s.streamC = s.arbC.Shrink(s.c)
		case 2:
			v, ok := s.streamC.Next()
			if ok {
				return trial4[A, B, C, D]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, arbD: s.arbD, f: s.f, a: s.a, b: s.b, c: v, d: s.d}, true
			}
			s.stage = 3
			s.streamD = s.arbD.Shrink(s.d)
		case 3:
			v, ok := s.streamD.Next()
			if !ok {
				return nil, false
			}
			return trial4[A, B, C, D]{arbA: s.arbA, arbB: s.arbB, arbC: s.arbC, arbD: s.arbD, f: s.f, a: s.a, b: s.b, c: s.c, d: v}, true
		}
	}
}
