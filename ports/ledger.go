package ports

import (
	"context"

	"bross/domain/core"
	"bross/domain/run"
)

// RunLedger persists completed evaluation runs
type RunLedger interface {
	SaveRun(ctx context.Context, r *run.EvaluationRun) error
	GetRun(ctx context.Context, id core.RunID) (*run.EvaluationRun, error)
	ListRuns(ctx context.Context, limit int) ([]*run.EvaluationRun, error)
}
