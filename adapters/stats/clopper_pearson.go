package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"bross/internal/errors"
)

// ClopperPearson computes exact two-sided binomial confidence intervals from
// beta-distribution quantiles. It implements ports.ConfidenceIntervalPort.
type ClopperPearson struct{}

// NewClopperPearson creates the exact-interval primitive
func NewClopperPearson() ClopperPearson {
	return ClopperPearson{}
}

// Interval returns the exact two-sided interval for successes out of trials at
// significance level alpha:
//
//	lower = BetaInv(alpha/2; k, n-k+1)       (0 when k == 0)
//	upper = BetaInv(1-alpha/2; k+1, n-k)     (1 when k == n)
func (ClopperPearson) Interval(successes, trials int, alpha float64) (float64, float64, error) {
	if trials < 1 {
		return 0, 0, errors.InvalidArgument(
			fmt.Sprintf("trials must be >= 1, got %d", trials))
	}
	if successes < 0 || successes > trials {
		return 0, 0, errors.InvalidArgument(
			fmt.Sprintf("successes must be in [0,%d], got %d", trials, successes))
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, 0, errors.InvalidArgument(
			fmt.Sprintf("alpha must be in (0,1), got %g", alpha))
	}

	k := float64(successes)
	n := float64(trials)

	lower := 0.0
	if successes > 0 {
		lowerDist := distuv.Beta{Alpha: k, Beta: n - k + 1}
		lower = lowerDist.Quantile(alpha / 2)
	}

	upper := 1.0
	if successes < trials {
		upperDist := distuv.Beta{Alpha: k + 1, Beta: n - k}
		upper = upperDist.Quantile(1 - alpha/2)
	}

	return lower, upper, nil
}
