package stats

import (
	"math"
	"testing"

	"bross/internal/errors"
)

func TestSummarizeSteps(t *testing.T) {
	steps := []float64{10, 20, 30, 40, 50}

	summary, err := SummarizeSteps(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(summary.Mean-30) > 1e-9 {
		t.Errorf("expected mean 30, got %g", summary.Mean)
	}
	if math.Abs(summary.Median-30) > 1e-9 {
		t.Errorf("expected median 30, got %g", summary.Median)
	}
	if summary.Min != 10 || summary.Max != 50 {
		t.Errorf("expected range [10,50], got [%g,%g]", summary.Min, summary.Max)
	}
	if summary.P90 < summary.Median || summary.P90 > summary.Max {
		t.Errorf("p90 %g outside [median, max]", summary.P90)
	}
}

func TestSummarizeSteps_Empty(t *testing.T) {
	_, err := SummarizeSteps(nil)
	if errors.GetCode(err) != errors.CodeInvalidArgument {
		t.Errorf("expected %s, got %v", errors.CodeInvalidArgument, err)
	}
}
