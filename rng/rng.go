// Package rng provides the seeded random source that every generator in
// this module draws from.
//
// A Source pairs a deterministic pseudo-random stream with a mutable size
// parameter: generators only read the size, the driver is the only caller
// allowed to change it between test cases.
package rng

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// Source is a seeded source of randomness with a current size bound.
// Two Sources seeded with the same value produce the same sequence of
// draws as long as the same methods are called in the same order; all
// methods read from one shared stream.
type Source struct {
	rnd  *rand.Rand
	size int
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) *Source {
	mt := mt19937.New()
	mt.Seed(seed)
	return &Source{rnd: rand.New(mt)}
}

// Size returns the current size bound. Generators use this to bound the
// magnitude of the values they produce (list length, integer range, ...).
func (s *Source) Size() int {
	return s.size
}

// SetSize changes the size bound. Only the driver is expected to call
// this; generators must treat it as read-only.
func (s *Source) SetSize(n int) {
	if n < 0 {
		n = 0
	}
	s.size = n
}

// Bool returns a uniformly distributed boolean.
func (s *Source) Bool() bool {
	return s.rnd.Intn(2) == 1
}

// Intn returns a uniform value in [0, n). It panics if n <= 0, same as
// math/rand.
func (s *Source) Intn(n int) int {
	return s.rnd.Intn(n)
}

// IntRange returns a uniform value in [lo, hi], inclusive on both ends.
// If hi < lo, the bounds are swapped.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rnd.Intn(hi-lo+1)
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (s *Source) Int63() int64 {
	return s.rnd.Int63()
}

// Uint64 returns a pseudo-random 64-bit integer covering the full range.
func (s *Source) Uint64() uint64 {
	return s.rnd.Uint64()
}

// Float64 returns a pseudo-random value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rnd.Float64()
}

// Choose picks one element of items uniformly at random. It panics if
// items is empty.
func Choose[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}
