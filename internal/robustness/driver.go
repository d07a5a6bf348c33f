package robustness

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"bross/domain/trial"
	"bross/domain/verdict"
	"bross/internal/errors"
	"bross/internal/traversal"
	"bross/ports"
)

const rngStreamName = "order-permutation"

// Driver assesses how sensitive the sequential plan's conclusion is to the
// order informative pairs arrive in: it repeatedly shuffles the raw pair
// list, re-runs the walk, and collects the resulting decision codes.
type Driver struct {
	engine   *traversal.Engine
	rng      ports.RNGPort
	progress ports.ProgressPort
	workers  int
}

// NewDriver creates a driver. workers bounds concurrent iterations; values
// below 1 fall back to 1.
func NewDriver(engine *traversal.Engine, rng ports.RNGPort, progress ports.ProgressPort, workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	if progress == nil {
		progress = ports.NopProgress{}
	}
	return &Driver{engine: engine, rng: rng, progress: progress, workers: workers}
}

// Evaluate runs `iterations` independent permute-filter-walk rounds and
// returns one outcome per iteration plus the per-iteration walk lengths.
//
// Each iteration shuffles the ENTIRE input (ties included) before filtering,
// uses its own seeded RNG stream derived from baseSeed, and walks a private
// grid copy, so iterations are mutually independent and may run concurrently.
// Results land in disjoint slots of a pre-allocated slice; no ordering
// between iterations is required or assumed.
func (d *Driver) Evaluate(ctx context.Context, pairs trial.PairSequence, iterations int, baseSeed int64) ([]verdict.Outcome, []float64, error) {
	if iterations < 1 {
		return nil, nil, errors.InvalidArgument(
			fmt.Sprintf("iterations must be >= 1, got %d", iterations))
	}
	if err := trial.Validate(pairs); err != nil {
		return nil, nil, err
	}

	outcomes := make([]verdict.Outcome, iterations)
	steps := make([]float64, iterations)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(d.workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	completed := 0

	for i := 0; i < iterations; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			// context cancelled: stop launching, discard the rest
			break
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)

			outcome, nSteps, err := d.iterate(ctx, pairs, baseSeed+int64(i))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				return
			}
			outcomes[i] = outcome
			steps[i] = float64(nSteps)
			completed++
			d.progress.Step(completed, iterations)
		}(i)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "evaluation aborted")
	}
	return outcomes, steps, nil
}

// iterate runs one permute-filter-walk round
func (d *Driver) iterate(ctx context.Context, pairs trial.PairSequence, seed int64) (verdict.Outcome, int, error) {
	rng, err := d.rng.SeededStream(ctx, rngStreamName, seed)
	if err != nil {
		return verdict.Absent(), 0, errors.Wrap(err, "failed to obtain RNG stream")
	}

	shuffled := pairs.Shuffled(rng)
	informative := trial.FilterInformative(shuffled)

	res, err := d.engine.Run(informative)
	if err != nil {
		return verdict.Absent(), 0, err
	}
	return res.Outcome, res.Steps, nil
}
