// Package arbitrary pairs a generator with a shrinker for the same type,
// and supplies the composite value types (pairs, either, options) this
// module's driver and builtin properties are tested against.
package arbitrary

import (
	"github.com/BurntSushi/quickcheck/gen"
	"github.com/BurntSushi/quickcheck/rng"
	"github.com/BurntSushi/quickcheck/shrink"
)

// Arbitrary bundles the two halves of the capability a testable property
// needs for one argument type: a way to sample it, and a way to shrink a
// sample that made the property fail.
type Arbitrary[T any] struct {
	Gen    gen.Generator[T]
	Shrink shrink.Shrinker[T]
}

var (
	Bool    = Arbitrary[bool]{Gen: gen.Bool(), Shrink: shrink.Bool()}
	Int     = Arbitrary[int]{Gen: gen.Int[int](), Shrink: shrink.Int[int]()}
	Int8    = Arbitrary[int8]{Gen: gen.Int[int8](), Shrink: shrink.Int[int8]()}
	Int16   = Arbitrary[int16]{Gen: gen.Int[int16](), Shrink: shrink.Int[int16]()}
	Int32   = Arbitrary[int32]{Gen: gen.Int[int32](), Shrink: shrink.Int[int32]()}
	Int64   = Arbitrary[int64]{Gen: gen.Int[int64](), Shrink: shrink.Int[int64]()}
	Uint    = Arbitrary[uint]{Gen: gen.Uint[uint](), Shrink: shrink.Uint[uint]()}
	Uint8   = Arbitrary[uint8]{Gen: gen.Uint[uint8](), Shrink: shrink.Uint[uint8]()}
	Uint16  = Arbitrary[uint16]{Gen: gen.Uint[uint16](), Shrink: shrink.Uint[uint16]()}
	Uint32  = Arbitrary[uint32]{Gen: gen.Uint[uint32](), Shrink: shrink.Uint[uint32]()}
	Uint64  = Arbitrary[uint64]{Gen: gen.Uint[uint64](), Shrink: shrink.Uint[uint64]()}
	Float32 = Arbitrary[float32]{Gen: gen.Float[float32](), Shrink: shrink.Float[float32]()}
	Float64 = Arbitrary[float64]{Gen: gen.Float[float64](), Shrink: shrink.Float[float64]()}
	Rune    = Arbitrary[rune]{Gen: gen.Rune(), Shrink: shrink.Rune()}
	String  = Arbitrary[string]{Gen: gen.String(), Shrink: shrink.String()}
	Bytes   = Arbitrary[[]byte]{Gen: gen.Bytes(), Shrink: shrink.Slice[byte](shrink.Uint[byte]())}
)

// SliceOf derives an Arbitrary[[]T] from an Arbitrary[T]: length is bounded
// by the random source's size, shrinking removes elements before refining
// survivors in place.
func SliceOf[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return Arbitrary[[]T]{
		Gen:    gen.Slice(elem.Gen),
		Shrink: shrink.Slice(elem.Shrink),
	}
}

// Option is the generated analog of a type that may or may not be
// present. The zero value is the absent case.
type Option[T any] struct {
	Valid bool
	Value T
}

// OptionOf derives an Arbitrary for a value that is present about half
// the time. Absent is minimal; Present(x) shrinks to Absent first, then
// to Present(x') for each x' that x shrinks to.
func OptionOf[T any](elem Arbitrary[T]) Arbitrary[Option[T]] {
	return Arbitrary[Option[T]]{
		Gen: func(r *rng.Source) Option[T] {
			if r.Bool() {
				return Option[T]{Valid: true, Value: elem.Gen(r)}
			}
			return Option[T]{}
		},
		Shrink: func(o Option[T]) shrink.Stream[Option[T]] {
			if !o.Valid {
				return shrink.Empty[Option[T]]()
			}
			absent := shrink.Single(Option[T]{})
			rest := shrink.Map(elem.Shrink(o.Value), func(v T) Option[T] {
				return Option[T]{Valid: true, Value: v}
			})
			return shrink.Concat(absent, rest)
		},
	}
}

// Either holds one of two differently-typed values, the generated analog
// of a two-variant result type.
type Either[L, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

// EitherOf derives an Arbitrary that picks Left or Right with equal
// probability and shrinks only within whichever side is populated.
func EitherOf[L, R any](left Arbitrary[L], right Arbitrary[R]) Arbitrary[Either[L, R]] {
	return Arbitrary[Either[L, R]]{
		Gen: func(r *rng.Source) Either[L, R] {
			if r.Bool() {
				return Either[L, R]{IsLeft: true, Left: left.Gen(r)}
			}
			return Either[L, R]{Right: right.Gen(r)}
		},
		Shrink: func(e Either[L, R]) shrink.Stream[Either[L, R]] {
			if e.IsLeft {
				return shrink.Map(left.Shrink(e.Left), func(v L) Either[L, R] {
					return Either[L, R]{IsLeft: true, Left: v}
				})
			}
			return shrink.Map(right.Shrink(e.Right), func(v R) Either[L, R] {
				return Either[L, R]{Right: v}
			})
		},
	}
}
