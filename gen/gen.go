// Package gen defines the generation capability: values that, given a
// random source, produce one sample of a type T bounded by the source's
// current size.
//
// Go has no way to retroactively attach a trait to built-in types such as
// int or string, so the capability is realized as first-class generator
// values (closures) rather than methods on T — the same shape the
// gopter/rapid family of Go QuickCheck ports use.
package gen

import "github.com/BurntSushi/quickcheck/rng"

// Generator produces one value of T per call, reading (never writing)
// r's size. A call must be total: no state of r may cause it to fail.
type Generator[T any] func(r *rng.Source) T

// Const always returns v, ignoring the random source.
func Const[T any](v T) Generator[T] {
	return func(*rng.Source) T { return v }
}

// Map derives a Generator[U] by transforming every value g produces.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return func(r *rng.Source) U { return f(g(r)) }
}

// Bind sequences two generators, letting the second depend on the first's
// sample.
func Bind[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return func(r *rng.Source) U { return f(g(r))(r) }
}

// OneOf picks one of the given generators uniformly at random, then draws
// from it. It panics if gs is empty.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	return func(r *rng.Source) T {
		return rng.Choose(r, gs)(r)
	}
}
