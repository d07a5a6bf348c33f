package run

import (
	"bross/domain/core"
	"bross/domain/verdict"
)

// StepsSummary describes the distribution of walk lengths (informative pairs
// consumed before a decision) across the Monte Carlo iterations
type StepsSummary struct {
	Mean   float64 `json:"mean" db:"steps_mean"`
	Median float64 `json:"median" db:"steps_median"`
	P90    float64 `json:"p90" db:"steps_p90"`
	Min    float64 `json:"min" db:"steps_min"`
	Max    float64 `json:"max" db:"steps_max"`
}

// EvaluationRun is the persisted record of one order-robustness evaluation
type EvaluationRun struct {
	ID               core.RunID             `json:"id" db:"id"`
	CreatedAt        core.Timestamp         `json:"created_at" db:"created_at"`
	Seed             int64                  `json:"seed" db:"seed"`
	Iterations       int                    `json:"iterations" db:"iterations"`
	Alpha            float64                `json:"alpha" db:"alpha"`
	TotalPairs       int                    `json:"total_pairs" db:"total_pairs"`
	InformativePairs int                    `json:"informative_pairs" db:"informative_pairs"`
	Table            verdict.FrequencyTable `json:"table"`
	Steps            StepsSummary           `json:"steps"`
}
