// Package shrink defines the shrinking capability: given a failing value,
// produce a stream of strictly "smaller" candidates to retry, pulled one
// at a time so the driver can abandon the stream as soon as it finds a
// candidate worth recursing into.
package shrink

// Stream yields candidate values on demand. Next returns (zero, false)
// once exhausted; a Stream must never be resumed after that.
type Stream[T any] interface {
	Next() (T, bool)
}

// Shrinker proposes a Stream of values "smaller" than v, for some type-
// specific notion of smaller. It must terminate: repeatedly following
// Shrinker(v).Next() must reach a fixed point with no further candidates.
type Shrinker[T any] func(v T) Stream[T]

type funcStream[T any] struct {
	next func() (T, bool)
}

func (f funcStream[T]) Next() (T, bool) { return f.next() }

// Empty never yields anything. Used for minimal values (0, "", nil) that
// cannot shrink further.
func Empty[T any]() Stream[T] {
	return funcStream[T]{next: func() (T, bool) {
		var zero T
		return zero, false
	}}
}

// Single yields v exactly once.
func Single[T any](v T) Stream[T] {
	done := false
	return funcStream[T]{next: func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		done = true
		return v, true
	}}
}

// FromSlice yields each element of vs in order, computed up front. Use
// for shrinkers whose full candidate list is cheap to build eagerly;
// evaluating those candidates against a property still happens lazily,
// one Next() at a time.
func FromSlice[T any](vs []T) Stream[T] {
	i := 0
	return funcStream[T]{next: func() (T, bool) {
		if i >= len(vs) {
			var zero T
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	}}
}

// Concat chains streams end to end. The next stream is not touched until
// the previous one is exhausted.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	i := 0
	return funcStream[T]{next: func() (T, bool) {
		for i < len(streams) {
			v, ok := streams[i].Next()
			if ok {
				return v, true
			}
			i++
		}
		var zero T
		return zero, false
	}}
}

// Map transforms every value s yields.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return funcStream[U]{next: func() (U, bool) {
		v, ok := s.Next()
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	}}
}

// Collect drains s into a slice. Intended for tests against a known-finite
// stream; the driver itself never calls this.
func Collect[T any](s Stream[T]) []T {
	var out []T
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
