// Package demo holds the example properties the qcheck binary runs.
package demo

import (
	"github.com/BurntSushi/quickcheck"
	"github.com/BurntSushi/quickcheck/arbitrary"
)

// Case names one property so the binary can report on it by name.
type Case struct {
	Name     string
	Property quickcheck.Property
}

// Cases returns the demonstration properties: one that holds, and two
// that don't, so a run of qcheck always has something to show for its
// shrinking.
func Cases() []Case {
	return []Case{
		{Name: "reverse-twice-is-identity", Property: reverseTwiceIsIdentity()},
		{Name: "reverse-omits-first-element (buggy)", Property: reverseOmitsFirstBuggy()},
		{Name: "sieve-skips-even-composites (buggy)", Property: sieveSkipsEvenCompositesBuggy()},
	}
}

func properReverse(xs []int) []int {
	rev := make([]int, len(xs))
	for i, x := range xs {
		rev[len(xs)-1-i] = x
	}
	return rev
}

// reverseTwiceIsIdentity is the property a correct reverse satisfies:
// applying it twice gets back the original sequence.
func reverseTwiceIsIdentity() quickcheck.Property {
	return quickcheck.ForAll1(arbitrary.SliceOf(arbitrary.Int), func(xs []int) quickcheck.Outcome {
		return quickcheck.Equal(properReverse(properReverse(xs)), xs)
	})
}

// reverseOmitsFirst is reverse with an off-by-one: the loop stops one
// short, so the first element of the input never makes it into the
// output.
func reverseOmitsFirst(xs []int) []int {
	rev := make([]int, 0, len(xs))
	for i := len(xs) - 1; i >= 1; i-- {
		rev = append(rev, xs[i])
	}
	return rev
}

// reverseOmitsFirstBuggy demonstrates a shrink search: any non-empty
// slice trips it, and it shrinks to a single zero.
func reverseOmitsFirstBuggy() quickcheck.Property {
	return quickcheck.ForAll1(arbitrary.SliceOf(arbitrary.Int), func(xs []int) quickcheck.Outcome {
		return quickcheck.Equal(reverseOmitsFirst(reverseOmitsFirst(xs)), xs)
	})
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

// sieveOfEratosthenesSkippingTwo is a sieve with the classic demo bug:
// it never marks multiples of 2 while sieving, so even numbers with no
// odd prime factor (4, 8, 16, ...) are reported as prime.
func sieveOfEratosthenesSkippingTwo(n int) []int {
	if n <= 1 {
		return nil
	}
	marked := make([]bool, n+1)
	marked[0], marked[1] = true, true
	for p := 2; p < n; p++ {
		if p == 2 {
			continue // whoops: should still mark multiples of 2
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

// sieveSkipsEvenCompositesBuggy shrinks to n = 4, the smallest input
// that exposes the bug.
func sieveSkipsEvenCompositesBuggy() quickcheck.Property {
	return quickcheck.ForAll1(arbitrary.Uint, func(n uint) quickcheck.Outcome {
		for _, p := range sieveOfEratosthenesSkippingTwo(int(n)) {
			if !isPrime(p) {
				return quickcheck.Fail("sieve reported a composite number as prime")
			}
		}
		return quickcheck.Pass()
	})
}
