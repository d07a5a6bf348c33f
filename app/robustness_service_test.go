package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bross/adapters/rng"
	"bross/adapters/stats"
	"bross/domain/plan"
	"bross/domain/verdict"
	"bross/internal/robustness"
	"bross/internal/testkit"
	"bross/internal/traversal"
	"bross/ports"
)

func newService(t *testing.T, ledger ports.RunLedger) *RobustnessService {
	t.Helper()
	engine := traversal.NewEngine(plan.Default())
	driver := robustness.NewDriver(engine, rng.NewSeededRNG(), ports.NopProgress{}, 4)
	aggregator := robustness.NewAggregator(stats.NewClopperPearson())
	return NewRobustnessService(driver, aggregator, ledger, nil)
}

// The reference robustness scenario: 1000 reorderings of a strongly
// A-favoring pair set. Every category count is accounted for and the A-better
// interval excludes zero.
func TestEvaluate_StronglyFavoringA(t *testing.T) {
	service := newService(t, nil)

	result, err := service.Evaluate(context.Background(), EvaluateRequest{
		Pairs:      testkit.FavoringA(9, 2, 9),
		Iterations: 1000,
		Alpha:      0.05,
		Seed:       42,
	})
	require.NoError(t, err)

	r := result.Run
	assert.Equal(t, 1000, r.Iterations)
	assert.Equal(t, 20, r.TotalPairs)
	assert.Equal(t, 11, r.InformativePairs)
	assert.Len(t, result.Outcomes, 1000)

	sum := 0
	for _, row := range r.Table.Rows {
		sum += row.Count
	}
	assert.Equal(t, 1000, sum, "category counts must sum to the iteration count")

	aRow := r.Table.Row(verdict.CategoryABetter)
	require.NotNil(t, aRow)
	assert.Equal(t, 1000, aRow.Count, "a 9-vs-2 split decides A-better under every ordering")
	assert.Greater(t, aRow.Lower, 0.0, "A-better interval must exclude zero")

	// orderings front-loading the A-wins cross the boundary after 7 or 9 pairs
	assert.GreaterOrEqual(t, r.Steps.Min, 7.0)
	assert.Equal(t, 11.0, r.Steps.Max)
	assert.Less(t, r.Steps.Mean, 11.0)
}

func TestEvaluate_PersistsWhenRequested(t *testing.T) {
	ledger := testkit.NewInMemoryLedger()
	service := newService(t, ledger)

	result, err := service.Evaluate(context.Background(), EvaluateRequest{
		Pairs:      testkit.FavoringA(8, 2, 2),
		Iterations: 100,
		Alpha:      0.05,
		Seed:       7,
		Persist:    true,
	})
	require.NoError(t, err)

	stored, err := ledger.GetRun(context.Background(), result.Run.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Run.Iterations, stored.Iterations)
}

func TestEvaluate_PersistWithoutLedgerFails(t *testing.T) {
	service := newService(t, nil)

	_, err := service.Evaluate(context.Background(), EvaluateRequest{
		Pairs:      testkit.FavoringA(3, 1, 0),
		Iterations: 10,
		Alpha:      0.05,
		Persist:    true,
	})
	assert.Error(t, err)
}

func TestEvaluate_RejectsBadAlpha(t *testing.T) {
	service := newService(t, nil)

	_, err := service.Evaluate(context.Background(), EvaluateRequest{
		Pairs:      testkit.FavoringA(3, 1, 0),
		Iterations: 10,
		Alpha:      1.5,
	})
	assert.Error(t, err)
}
