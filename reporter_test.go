package quickcheck

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/BurntSushi/quickcheck/arbitrary"
)

func TestCheckWith_ReportsPassedCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	reporter.EXPECT().Passed(gomock.Any()).Times(10)

	prop := ForAllBool1(arbitrary.Int, func(x int) bool { return x == x })
	cfg := New(WithTests(10), WithMaxTests(100), WithReporter(reporter))

	out := CheckWith(cfg, prop)
	if out.Status != StatusPass {
		t.Fatalf("expected pass, got %v", out.Status)
	}
}

func TestCheckWith_ReportsShrinkingSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := NewMockReporter(ctrl)
	reporter.EXPECT().Passed(gomock.Any()).AnyTimes()
	reporter.EXPECT().Discarded(gomock.Any()).AnyTimes()
	var steps []int
	var lastWitness string
	reporter.EXPECT().Shrinking(gomock.Any(), gomock.Any()).Do(func(step int, witness string) {
		steps = append(steps, step)
		lastWitness = witness
	}).AnyTimes()
	reporter.EXPECT().GaveUp(gomock.Any(), gomock.Any()).AnyTimes()

	prop := ForAllBool1(arbitrary.Int, func(x int) bool { return x >= 0 })
	cfg := New(WithTests(50), WithMaxTests(500), WithSeed(2024), WithReporter(reporter))

	out := CheckWith(cfg, prop)
	if !out.IsFailure() {
		t.Skip("no negative value was sampled under this seed; nothing to shrink")
	}
	for i, step := range steps {
		if step != i+1 {
			t.Fatalf("expected shrink steps numbered 1, 2, ...; got %v", steps)
		}
	}
	if len(steps) > 0 && lastWitness != out.Witness {
		t.Fatalf("last reported shrink witness %s differs from final witness %s", lastWitness, out.Witness)
	}
}

func TestNopReporter_DoesNothing(t *testing.T) {
	var r Reporter = NopReporter{}
	r.Passed(1)
	r.Discarded(1)
	r.Shrinking(1, "(0)")
	r.GaveUp(10, 0)
}
