package robustness

import (
	"fmt"

	"bross/domain/verdict"
	"bross/internal/errors"
	"bross/ports"
)

// Aggregator reduces a stream of per-iteration outcomes into the five-category
// frequency table. Interval math is delegated to the confidence-interval port;
// the aggregator only counts, divides and assembles.
type Aggregator struct {
	ci ports.ConfidenceIntervalPort
}

// NewAggregator creates an aggregator backed by an exact-interval primitive
func NewAggregator(ci ports.ConfidenceIntervalPort) *Aggregator {
	return &Aggregator{ci: ci}
}

// Summarize counts outcomes per category and attaches a two-sided exact
// binomial confidence interval to each row. Counts over the five categories
// always sum to len(results).
func (a *Aggregator) Summarize(results []verdict.Outcome, alpha float64) (*verdict.FrequencyTable, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("alpha must be in (0,1), got %g", alpha))
	}
	if len(results) == 0 {
		return nil, errors.InvalidArgument("no outcomes to summarize")
	}

	counts := make(map[verdict.Category]int, 5)
	for _, o := range results {
		counts[o.Category()]++
	}

	total := len(results)
	table := &verdict.FrequencyTable{
		Total: total,
		Alpha: alpha,
		Rows:  make([]verdict.CategoryRow, 0, 5),
	}
	for _, cat := range verdict.Categories() {
		count := counts[cat]
		lower, upper, err := a.ci.Interval(count, total, alpha)
		if err != nil {
			return nil, errors.Wrapf(err, "confidence interval for category %s", cat)
		}
		table.Rows = append(table.Rows, verdict.CategoryRow{
			Category:   cat,
			Count:      count,
			Proportion: float64(count) / float64(total),
			Lower:      lower,
			Upper:      upper,
		})
	}
	return table, nil
}
