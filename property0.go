package quickcheck

import "github.com/BurntSushi/quickcheck/rng"

// propertyFunc0 is a property that takes no arguments: it either always
// passes, always fails, or decides on some hidden state outside this
// framework's control. It never shrinks, since there's nothing to shrink.
type propertyFunc0 struct {
	f func() Outcome
}

// ForAll0 wraps a niladic property body. Useful for invariants that
// don't depend on generated input (timing, global state, a fixed
// regression case).
func ForAll0(f func() Outcome) Property {
	return propertyFunc0{f: f}
}

// ForAllBool0 is the bool-returning convenience form of ForAll0.
func ForAllBool0(f func() bool) Property {
	return ForAll0(func() Outcome { return FromBool(f()) })
}

func (p propertyFunc0) sample(*rng.Source) trial {
	return trial0{f: p.f}
}

type trial0 struct {
	f func() Outcome
}

func (t trial0) run() Outcome {
	return safeRun(t.f)
}

func (t trial0) shrink() shrinkCases {
	return emptyShrinkCases{}
}
