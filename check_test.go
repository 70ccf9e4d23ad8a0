package quickcheck

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/BurntSushi/quickcheck/arbitrary"
)

// reverseOmitFirst is a deliberately buggy reverse: it drops index 0,
// the kind of off-by-one a real reviewer is meant to catch by reading
// the counter-example rather than the code.
func reverseOmitFirst(xs []int) []int {
	rev := make([]int, 0, len(xs))
	for i := len(xs) - 1; i >= 1; i-- {
		rev = append(rev, xs[i])
	}
	return rev
}

func TestCheck_TrivialIdentityAlwaysPasses(t *testing.T) {
	prop := ForAllBool1(arbitrary.Int, func(x int) bool { return x == x })
	out := Check(prop)
	if out.Status != StatusPass {
		t.Fatalf("expected pass, got %v: %s", out.Status, out.Reason)
	}
}

func TestShrinkSearch_ReverseOmitFirstConvergesToSingleZero(t *testing.T) {
	// Any single-element slice already violates reverse-of-reverse (the
	// bug drops the only element), and for a one-element slice the
	// failure doesn't depend on the element's value — so shrinking can
	// walk the length down to 1 and then the value down to 0 without
	// ever finding a passing stop along the way.
	arb := arbitrary.SliceOf(arbitrary.Int)
	f := func(xs []int) Outcome {
		got := reverseOmitFirst(reverseOmitFirst(xs))
		return Equal(got, xs)
	}
	tr := trial1[[]int]{arb: arb, f: f, a: []int{7, -3, 2}}
	out := tr.run()
	if !out.IsFailure() {
		t.Fatalf("expected the seed trial to fail, got %v", out.Status)
	}
	final := shrinkSearch(tr, out, NopReporter{})
	if final.Witness != "([0])" {
		t.Fatalf("expected witness ([0]), got %s", final.Witness)
	}
}

func TestShrinkSearch_NonNegativeConvergesToMinusOne(t *testing.T) {
	arb := arbitrary.Int
	f := func(x int) Outcome { return FromBool(x >= 0) }
	tr := trial1[int]{arb: arb, f: f, a: -5}
	out := tr.run()
	if !out.IsFailure() {
		t.Fatalf("expected -5 to fail x >= 0")
	}
	final := shrinkSearch(tr, out, NopReporter{})
	if final.Witness != "(-1)" {
		t.Fatalf("expected witness (-1), got %s", final.Witness)
	}
}

// buggySieve never marks multiples of 2 while sieving, so powers of two
// past 2 stay unmarked and any n >= 4 reports 4 as prime.
func buggySieve(n int) []int {
	if n <= 1 {
		return nil
	}
	marked := make([]bool, n+1)
	marked[0], marked[1] = true, true
	for p := 2; p < n; p++ {
		if p == 2 {
			continue
		}
		for i := p * 2; i <= n; i += p {
			marked[i] = true
		}
	}
	var primes []int
	for i, m := range marked {
		if !m {
			primes = append(primes, i)
		}
	}
	return primes
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestShrinkSearch_BuggySieveConvergesToFour(t *testing.T) {
	arb := arbitrary.Uint
	f := func(n uint) Outcome {
		for _, p := range buggySieve(int(n)) {
			if !isPrime(p) {
				return Fail("sieve reported a composite as prime")
			}
		}
		return Pass()
	}
	tr := trial1[uint]{arb: arb, f: f, a: 50}
	out := tr.run()
	if !out.IsFailure() {
		t.Fatalf("expected n=50 to expose the sieve bug")
	}
	final := shrinkSearch(tr, out, NopReporter{})
	if final.Witness != "(4)" {
		t.Fatalf("expected witness (4), got %s", final.Witness)
	}
}

func TestCheckWith_AlwaysDiscardGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	reporter.EXPECT().Discarded(gomock.Any()).AnyTimes()
	reporter.EXPECT().GaveUp(1000, 0)

	prop := ForAll0(func() Outcome { return Discard() })
	cfg := New(WithTests(100), WithMaxTests(1000), WithReporter(reporter))
	out := CheckWith(cfg, prop)

	if out.Status != StatusPass {
		t.Fatalf("gave-up outcome should still be StatusPass, got %v", out.Status)
	}
	if out.Reason == "" {
		t.Fatalf("expected a gave-up reason in the outcome")
	}
}

func TestCheckWith_DeterministicForFixedSeed(t *testing.T) {
	newProp := func() Property {
		return ForAllBool1(arbitrary.Int, func(x int) bool { return x%17 != 0 })
	}
	cfg := New(WithSeed(12345), WithTests(30), WithMaxTests(300))

	out1 := CheckWith(cfg, newProp())
	out2 := CheckWith(cfg, newProp())

	if out1 != out2 {
		t.Fatalf("same seed produced different outcomes: %+v vs %+v", out1, out2)
	}
}

func TestIntShrink_GreedyFirstCandidateReachesZeroInOneStep(t *testing.T) {
	arb := arbitrary.Int
	for _, x := range []int{123456, -999, 1, -1} {
		first, ok := arb.Shrink(x).Next()
		if x == 0 {
			if ok {
				t.Fatalf("0 should not shrink further")
			}
			continue
		}
		if !ok {
			t.Fatalf("expected %d to have a first shrink candidate", x)
		}
		if first != 0 {
			t.Fatalf("expected the first shrink candidate of %d to be 0, got %d", x, first)
		}
	}
}

func TestSliceShrink_GreedyFirstCandidateIsEmpty(t *testing.T) {
	arb := arbitrary.SliceOf(arbitrary.Int)
	xs := []int{1, 2, 3, 4, 5}
	first, ok := arb.Shrink(xs).Next()
	if !ok {
		t.Fatalf("expected a first shrink candidate")
	}
	if len(first) != 0 {
		t.Fatalf("expected the first shrink candidate to be empty, got %v", first)
	}
}

func TestEqual_ReportsDiffOnMismatch(t *testing.T) {
	out := Equal([]int{1, 2}, []int{1, 3})
	if !out.IsFailure() {
		t.Fatalf("expected mismatch to fail")
	}
	if out.Reason == "" {
		t.Fatalf("expected a non-empty diff in the reason")
	}
}

func TestEqual_PassesOnMatch(t *testing.T) {
	out := Equal([]int{1, 2}, []int{1, 2})
	if out.Status != StatusPass {
		t.Fatalf("expected match to pass, got %v", out.Status)
	}
}

func TestSafeRun_RecoversPanic(t *testing.T) {
	out := safeRun(func() Outcome { panic("boom") })
	if !out.IsFailure() {
		t.Fatalf("expected a panic to surface as a failure")
	}
}
