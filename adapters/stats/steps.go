package stats

import (
	"github.com/montanaflynn/stats"

	"bross/domain/run"
	"bross/internal/errors"
)

// SummarizeSteps reduces the per-iteration walk lengths into a distribution
// summary for reporting
func SummarizeSteps(steps []float64) (run.StepsSummary, error) {
	if len(steps) == 0 {
		return run.StepsSummary{}, errors.InvalidArgument("no step counts to summarize")
	}

	mean, err := stats.Mean(steps)
	if err != nil {
		return run.StepsSummary{}, errors.Wrap(err, "steps mean")
	}
	median, err := stats.Median(steps)
	if err != nil {
		return run.StepsSummary{}, errors.Wrap(err, "steps median")
	}
	p90, err := stats.Percentile(steps, 90)
	if err != nil {
		return run.StepsSummary{}, errors.Wrap(err, "steps p90")
	}
	min, err := stats.Min(steps)
	if err != nil {
		return run.StepsSummary{}, errors.Wrap(err, "steps min")
	}
	max, err := stats.Max(steps)
	if err != nil {
		return run.StepsSummary{}, errors.Wrap(err, "steps max")
	}

	return run.StepsSummary{
		Mean:   mean,
		Median: median,
		P90:    p90,
		Min:    min,
		Max:    max,
	}, nil
}
