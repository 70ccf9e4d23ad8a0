// Package quickcheck generates random test cases for a property, runs
// them, and when one fails, searches for a smaller input that still
// fails before reporting it.
//
// A property is built with ForAll0 through ForAll4 (or their
// bool-returning ForAllBoolN counterparts), binding each argument to an
// arbitrary.Arbitrary that knows how to both generate and shrink values
// of that argument's type:
//
//	prop := quickcheck.ForAllBool1(arbitrary.Int, func(x int) bool {
//		return x == x
//	})
//	out := quickcheck.Check(prop)
//
// Check uses DefaultConfig; CheckWith takes an explicit Config built with
// New and the WithX options for a fixed seed, a custom test budget, or a
// Reporter that isn't the default logger.
package quickcheck
