package app

import (
	"context"

	"bross/adapters/stats"
	"bross/domain/core"
	"bross/domain/run"
	"bross/domain/trial"
	"bross/domain/verdict"
	"bross/internal"
	"bross/internal/errors"
	"bross/internal/robustness"
	"bross/ports"
)

// EvaluateRequest describes one order-robustness evaluation
type EvaluateRequest struct {
	Pairs      trial.PairSequence
	Iterations int
	Alpha      float64
	Seed       int64
	Persist    bool
}

// EvaluateResult bundles the derived run record with the raw per-iteration
// outcome sequence
type EvaluateResult struct {
	Run      *run.EvaluationRun
	Outcomes []verdict.Outcome
}

// RobustnessService orchestrates the full Monte Carlo evaluation: drive the
// permutations, aggregate the outcome stream, summarize walk lengths, and
// optionally persist the run.
type RobustnessService struct {
	driver     *robustness.Driver
	aggregator *robustness.Aggregator
	ledger     ports.RunLedger
	logger     *internal.Logger
}

// NewRobustnessService creates the evaluation service. ledger may be nil when
// persistence is not configured.
func NewRobustnessService(driver *robustness.Driver, aggregator *robustness.Aggregator, ledger ports.RunLedger, logger *internal.Logger) *RobustnessService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &RobustnessService{driver: driver, aggregator: aggregator, ledger: ledger, logger: logger}
}

// Evaluate runs the permutation study and assembles the run record
func (s *RobustnessService) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error) {
	if req.Alpha <= 0 || req.Alpha >= 1 {
		return nil, errors.InvalidArgument("alpha must be in (0,1)")
	}

	s.logger.Info("evaluating order robustness: %d pairs, %d iterations, alpha=%g, seed=%d",
		len(req.Pairs), req.Iterations, req.Alpha, req.Seed)

	outcomes, steps, err := s.driver.Evaluate(ctx, req.Pairs, req.Iterations, req.Seed)
	if err != nil {
		return nil, err
	}

	table, err := s.aggregator.Summarize(outcomes, req.Alpha)
	if err != nil {
		return nil, err
	}

	stepsSummary, err := stats.SummarizeSteps(steps)
	if err != nil {
		return nil, err
	}

	record := &run.EvaluationRun{
		ID:               core.NewRunID(),
		CreatedAt:        core.Now(),
		Seed:             req.Seed,
		Iterations:       req.Iterations,
		Alpha:            req.Alpha,
		TotalPairs:       len(req.Pairs),
		InformativePairs: trial.CountInformative(req.Pairs),
		Table:            *table,
		Steps:            stepsSummary,
	}

	if req.Persist {
		if s.ledger == nil {
			return nil, errors.InvalidArgument("persistence requested but no ledger configured")
		}
		if err := s.ledger.SaveRun(ctx, record); err != nil {
			return nil, errors.Wrap(err, "failed to persist evaluation run")
		}
		s.logger.Info("persisted evaluation run %s", record.ID)
	}

	return &EvaluateResult{Run: record, Outcomes: outcomes}, nil
}
