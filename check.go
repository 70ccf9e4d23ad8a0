package quickcheck

import (
	"fmt"
	"time"

	"github.com/BurntSushi/quickcheck/rng"
)

// Check runs property under DefaultConfig.
func Check(property Property) Outcome {
	return CheckWith(DefaultConfig(), property)
}

// CheckWith runs property under cfg: it samples trials with a size
// parameter that grows by one per trial (wrapping from MaxSize back to
// MinSize) until Tests of them pass, returning the first failure
// (shrunk to a local minimum) if one turns up, or a "gave up" Pass if
// too many trials are discarded before the budget runs out.
func CheckWith(cfg Config, property Property) Outcome {
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = newDefaultReporter(cfg.Verbose)
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = freshSeed()
	}
	src := rng.New(seed)

	minSize, maxSize := cfg.MinSize, cfg.MaxSize
	if maxSize < minSize {
		maxSize = minSize
	}
	span := maxSize - minSize + 1

	passed := 0
	ran := 0
	for ran = 0; ran < cfg.MaxTests && passed < cfg.Tests; ran++ {
		size := minSize
		if span > 0 {
			size = minSize + ran%span
		}
		src.SetSize(size)

		t := property.sample(src)
		out := t.run()

		switch out.Status {
		case StatusPass:
			passed++
			reporter.Passed(passed)
		case StatusDiscard:
			reporter.Discarded(ran - passed + 1)
		case StatusFail:
			return shrinkSearch(t, out, reporter)
		}
	}

	if passed < cfg.Tests {
		reporter.GaveUp(ran, passed)
		return Outcome{
			Status: StatusPass,
			Reason: fmt.Sprintf("gave up after %d tests; only %d passed", ran, passed),
		}
	}
	return Pass()
}

// shrinkSearch repeatedly looks for a smaller failing trial than
// current, taking the first one the shrink stream offers rather than
// the smallest (greedy local search, not exhaustive minimization), and
// stops as soon as a round finds nothing smaller that still fails.
func shrinkSearch(current trial, currentOutcome Outcome, reporter Reporter) Outcome {
	step := 0
	for {
		cases := current.shrink()
		advanced := false
		for {
			candidate, ok := cases.next()
			if !ok {
				break
			}
			out := candidate.run()
			if out.Status == StatusFail {
				step++
				reporter.Shrinking(step, out.Witness)
				current = candidate
				currentOutcome = out
				advanced = true
				break
			}
		}
		if !advanced {
			return currentOutcome
		}
	}
}

// freshSeed produces a seed for runs that don't pin one explicitly.
// Determinism only matters once a seed is fixed via WithSeed; this path
// exists purely so Check() is usable without ceremony.
func freshSeed() int64 {
	return time.Now().UnixNano()
}
