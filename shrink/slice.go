package shrink

// removeBlocks returns every way of deleting one contiguous block of
// length k from xs, walking block-aligned cut points. It is the
// "shuffle_vec" step of sequence shrinking: for k = len/2, len/4, ...,
// it proposes roughly-halved sequences before any per-element shrink is
// tried.
func removeBlocks[T any](xs []T, k int) [][]T {
	return shuffleVec(xs, k, len(xs))
}

func shuffleVec[T any](xs []T, k, n int) [][]T {
	if k > n {
		return nil
	}
	xs1 := append([]T{}, xs[:k]...)
	xs2 := xs[k:]
	if len(xs2) == 0 {
		return [][]T{{}}
	}
	shuffled := shuffleVec(xs2, k, n-k)
	more := make([][]T, 0, len(shuffled)+1)
	more = append(more, append([]T{}, xs2...))
	for _, s := range shuffled {
		combined := append(append([]T{}, xs1...), s...)
		more = append(more, combined)
	}
	return more
}

// Slice builds a shrinker for []T out of a shrinker for T. Candidates are
// tried shortest-first: the empty slice, then slices with progressively
// smaller contiguous blocks removed, then the original length with one
// element at a time shrunk in place. This mirrors the classic sequence-
// shrink recurrence: remove large chunks before refining survivors.
func Slice[T any](elem Shrinker[T]) Shrinker[[]T] {
	return func(xs []T) Stream[[]T] {
		if len(xs) == 0 {
			return Empty[[]T]()
		}
		var removals [][]T
		for k := len(xs) / 2; k > 0; k /= 2 {
			removals = append(removals, removeBlocks(xs, k)...)
		}
		return Concat(
			Single([]T{}),
			FromSlice(removals),
			inPlaceStream(xs, elem),
		)
	}
}

// inPlaceStream lazily shrinks xs[i] for each i in turn, yielding a full
// copy of xs with only that element replaced.
func inPlaceStream[T any](xs []T, elem Shrinker[T]) Stream[[]T] {
	i := 0
	var cur Stream[T]
	return funcStream[[]T]{next: func() ([]T, bool) {
		for {
			if cur == nil {
				if i >= len(xs) {
					return nil, false
				}
				cur = elem(xs[i])
			}
			v, ok := cur.Next()
			if !ok {
				cur = nil
				i++
				continue
			}
			changed := append([]T{}, xs...)
			changed[i] = v
			return changed, true
		}
	}}
}
