package quickcheck

import "github.com/google/go-cmp/cmp"

// Equal is a convenience property body: it passes when got and want are
// deep-equal, and on failure its Reason is a unified diff rather than a
// plain "expected x, got y" sentence.
func Equal[T any](got, want T) Outcome {
	if cmp.Equal(got, want) {
		return Pass()
	}
	return Fail(cmp.Diff(want, got))
}
