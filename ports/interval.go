package ports

// ConfidenceIntervalPort supplies the exact binomial interval primitive.
// Implementations compute a two-sided Clopper-Pearson interval for successes
// out of trials at significance level alpha.
type ConfidenceIntervalPort interface {
	Interval(successes, trials int, alpha float64) (lower, upper float64, err error)
}
