package arbitrary

import (
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

// Tuple2 through Tuple4 stand in for Go's lack of anonymous product
// types with per-field generics; they exist purely so a multi-argument
// property can be expressed as a single Arbitrary when needed (e.g.
// inside a Slice or Option of pairs).

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple2Of shrinks one component at a time, leaving the others fixed,
// trying A's shrinks before B's.
func Tuple2Of[A, B any](a Arbitrary[A], b Arbitrary[B]) Arbitrary[Tuple2[A, B]] {
	return Arbitrary[Tuple2[A, B]]{
		Gen: func(r *rng.Source) Tuple2[A, B] {
			return Tuple2[A, B]{A: a.Gen(r), B: b.Gen(r)}
		},
		Shrink: func(t Tuple2[A, B]) shrink.Stream[Tuple2[A, B]] {
			sa := shrink.Map(a.Shrink(t.A), func(v A) Tuple2[A, B] { return Tuple2[A, B]{A: v, B: t.B} })
			sb := shrink.Map(b.Shrink(t.B), func(v B) Tuple2[A, B] { return Tuple2[A, B]{A: t.A, B: v} })
			return shrink.Concat(sa, sb)
		},
	}
}

// Tuple3Of shrinks one component at a time: A, then B, then C.
func Tuple3Of[A, B, C any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C]) Arbitrary[Tuple3[A, B, C]] {
	return Arbitrary[Tuple3[A, B, C]]{
		Gen: func(r *rng.Source) Tuple3[A, B, C] {
			return Tuple3[A, B, C]{A: a.Gen(r), B: b.Gen(r), C: c.Gen(r)}
		},
		Shrink: func(t Tuple3[A, B, C]) shrink.Stream[Tuple3[A, B, C]] {
			sa := shrink.Map(a.Shrink(t.A), func(v A) Tuple3[A, B, C] { return Tuple3[A, B, C]{A: v, B: t.B, C: t.C} })
			sb := shrink.Map(b.Shrink(t.B), func(v B) Tuple3[A, B, C] { return Tuple3[A, B, C]{A: t.A, B: v, C: t.C} })
			sc := shrink.Map(c.Shrink(t.C), func(v C) Tuple3[A, B, C] { return Tuple3[A, B, C]{A: t.A, B: t.B, C: v} })
			return shrink.Concat(sa, sb, sc)
		},
	}
}

// Tuple4Of shrinks one component at a time: A, then B, then C, then D.
func Tuple4Of[A, B, C, D any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D]) Arbitrary[Tuple4[A, B, C, D]] {
	return Arbitrary[Tuple4[A, B, C, D]]{
		Gen: func(r *rng.Source) Tuple4[A, B, C, D] {
			return Tuple4[A, B, C, D]{A: a.Gen(r), B: b.Gen(r), C: c.Gen(r), D: d.Gen(r)}
		},
		Shrink: func(t Tuple4[A, B, C, D]) shrink.Stream[Tuple4[A, B, C, D]] {
			sa := shrink.Map(a.Shrink(t.A), func(v A) Tuple4[A, B, C, D] {
				return Tuple4[A, B, C, D]{A: v, B: t.B, C: t.C, D: t.D}
			})
			sb := shrink.Map(b.Shrink(t.B), func(v B) Tuple4[A, B, C, D] {
				return Tuple4[A, B, C, D]{A: t.A, B: v, C: t.C, D: t.D}
			})
			sc := shrink.Map(c.Shrink(t.C), func(v C) Tuple4[A, B, C, D] {
				return Tuple4[A, B, C, D]{A: t.A, B: t.B, C: v, D: t.D}
			})
			sd := shrink.Map(d.Shrink(t.D), func(v D) Tuple4[A, B, C, D] {
				return Tuple4[A, B, C, D]{A: t.A, B: t.B, C: t.C, D: v}
			})
			return shrink.Concat(sa, sb, sc, sd)
		},
	}
}
