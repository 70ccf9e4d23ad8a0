package gen

import (
	"golang.org/x/exp/constraints"

	"github.com/BurntSushi/quickcheck/rng"
)

// Bool generates a uniformly distributed boolean.
func Bool() Generator[bool] {
	return func(r *rng.Source) bool { return r.Bool() }
}

// Int generates a signed integer in [-size, size], where size is r's
// current size bound at draw time.
func Int[T constraints.Signed]() Generator[T] {
	return func(r *rng.Source) T {
		size := r.Size()
		return T(r.IntRange(-size, size))
	}
}

// Uint generates an unsigned integer in [0, size].
func Uint[T constraints.Unsigned]() Generator[T] {
	return func(r *rng.Source) T {
		size := r.Size()
		return T(r.IntRange(0, size))
	}
}

// Float generates a value in [-size, size] with fractional precision from
// r's underlying stream.
func Float[T constraints.Float]() Generator[T] {
	return func(r *rng.Source) T {
		size := r.Size()
		return T((r.Float64()*2 - 1) * float64(size))
	}
}

// printableASCIILo and printableASCIIHi bound the default rune alphabet:
// generated strings stay legible in failure witnesses.
const (
	printableASCIILo = 0x20
	printableASCIIHi = 0x7e
)

// Rune generates a printable ASCII code point.
func Rune() Generator[rune] {
	return func(r *rng.Source) rune {
		return rune(r.IntRange(printableASCIILo, printableASCIIHi))
	}
}

// String generates a string of printable ASCII runes, bounded in length
// by r's current size.
func String() Generator[string] {
	rg := Rune()
	return func(r *rng.Source) string {
		n := r.IntRange(0, r.Size())
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = rg(r)
		}
		return string(runes)
	}
}

// Bytes generates a byte slice bounded in length by r's current size.
func Bytes() Generator[[]byte] {
	return func(r *rng.Source) []byte {
		n := r.IntRange(0, r.Size())
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(r.Intn(256))
		}
		return b
	}
}

// Slice builds a generator for []T out of a generator for T: length is
// bounded by r's current size, each element drawn independently.
func Slice[T any](elem Generator[T]) Generator[[]T] {
	return func(r *rng.Source) []T {
		n := r.IntRange(0, r.Size())
		out := make([]T, n)
		for i := range out {
			out[i] = elem(r)
		}
		return out
	}
}
