package quickcheck

import "github.com/BurntSushi/quickcheck/rng"

// Property is anything the driver can sample once per trial and, on
// failure, shrink. Go has no variadic generics, so each arity gets its
// own concrete implementation (propertyFunc0..propertyFunc4) behind this
// one interface — the hand-written equivalent of the per-arity
// expansion a macro system would generate.
type Property interface {
	sample(r *rng.Source) trial
}

// trial is one concrete set of arguments drawn for a property, already
// bound so it can be re-run or shrunk without touching the random
// source again.
type trial interface {
	run() Outcome
	shrink() shrinkCases
}

// shrinkCases yields progressively smaller trials one at a time, so the
// driver can stop pulling as soon as it finds one worth recursing into.
type shrinkCases interface {
	next() (trial, bool)
}

type emptyShrinkCases struct{}

func (emptyShrinkCases) next() (trial, bool) { return nil, false }
