package app

import (
	"context"

	"bross/domain/plan"
	"bross/domain/trial"
	"bross/domain/verdict"
	"bross/internal"
	"bross/internal/traversal"
)

// AnalysisResult is the outcome of one one-shot analysis: the terminal
// decision, the annotated grid for rendering, and the walk accounting.
type AnalysisResult struct {
	Outcome          verdict.Outcome `json:"outcome"`
	Message          string          `json:"message"`
	Grid             *plan.Grid      `json:"-"`
	Steps            int             `json:"steps"`
	TotalPairs       int             `json:"total_pairs"`
	InformativePairs int             `json:"informative_pairs"`
}

// AnalysisService runs a single Bross analysis on a pair sequence in its
// given order: validate, discard ties, walk the decision map once.
type AnalysisService struct {
	engine *traversal.Engine
	logger *internal.Logger
}

// NewAnalysisService creates the one-shot analysis service
func NewAnalysisService(engine *traversal.Engine, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{engine: engine, logger: logger}
}

// Analyze validates the raw pairs, filters to the informative subset and runs
// one traversal. An all-ties input yields an absent outcome, not an error.
func (s *AnalysisService) Analyze(ctx context.Context, pairs trial.PairSequence) (*AnalysisResult, error) {
	if err := trial.Validate(pairs); err != nil {
		return nil, err
	}

	informative := trial.FilterInformative(pairs)
	s.logger.Debug("analyzing %d pairs (%d informative)", len(pairs), len(informative))

	res, err := s.engine.Run(informative)
	if err != nil {
		return nil, err
	}

	message := res.Outcome.Code.Message()
	if !res.Outcome.Decided {
		message = "no informative pairs: the procedure never started"
	}

	return &AnalysisResult{
		Outcome:          res.Outcome,
		Message:          message,
		Grid:             res.Grid,
		Steps:            res.Steps,
		TotalPairs:       len(pairs),
		InformativePairs: len(informative),
	}, nil
}
