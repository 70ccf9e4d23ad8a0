package quickcheck

import "github.com/BurntSushi/quickcheck/internal/qlog"

//go:generate mockgen -typed -package=quickcheck -destination=./reporter_mock.go -source=./reporter.go

// Reporter receives progress events from the driver as a run proceeds.
// Implementations must not block or panic — the driver does not recover
// from a Reporter failure.
type Reporter interface {
	// Passed is called each time a trial succeeds, with the running
	// count of successes so far.
	Passed(n int)
	// Discarded is called each time a trial is thrown out for violating
	// a precondition, with the running count of discards so far.
	Discarded(n int)
	// Shrinking is called each time the shrink search finds a smaller
	// failing trial, with the step number and that trial's witness.
	Shrinking(step int, witness string)
	// GaveUp is called once if the run exhausts its generation budget
	// without collecting enough passing trials.
	GaveUp(ran, passed int)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Passed(int)            {}
func (NopReporter) Discarded(int)         {}
func (NopReporter) Shrinking(int, string) {}
func (NopReporter) GaveUp(int, int)       {}

// logReporter is the default Reporter: it logs through qlog when
// verbose, or discards everything when not.
type logReporter struct {
	log qlog.Log
}

func newDefaultReporter(verbose bool) Reporter {
	if !verbose {
		return NopReporter{}
	}
	return &logReporter{log: qlog.New("quickcheck")}
}

func (r *logReporter) Passed(n int) {
	r.log.Info("passed %d tests", n)
}

func (r *logReporter) Discarded(n int) {
	r.log.Info("discarded %d tests so far", n)
}

func (r *logReporter) Shrinking(step int, witness string) {
	r.log.Info("shrink step %d: %s", step, witness)
}

func (r *logReporter) GaveUp(ran, passed int) {
	r.log.Info("gave up after %d tests, only %d passed", ran, passed)
}
