package testkit

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"bross/domain/core"
	"bross/domain/run"
	"bross/domain/trial"
)

// GeneratePairs draws n pairs where A responds with probability pA and B with
// probability pB, independently. Useful for synthetic robustness fixtures.
func GeneratePairs(rng *rand.Rand, n int, pA, pB float64) trial.PairSequence {
	pairs := make(trial.PairSequence, n)
	for i := range pairs {
		a, b := 0, 0
		if rng.Float64() < pA {
			a = 1
		}
		if rng.Float64() < pB {
			b = 1
		}
		pairs[i] = trial.Pair{A: a, B: b}
	}
	return pairs
}

// FavoringA returns a deterministic sequence dominated by A-wins: nA pairs
// (1,0), nB pairs (0,1), nTies pairs (1,1), interleaved round-robin.
func FavoringA(nA, nB, nTies int) trial.PairSequence {
	pairs := make(trial.PairSequence, 0, nA+nB+nTies)
	for nA > 0 || nB > 0 || nTies > 0 {
		if nA > 0 {
			pairs = append(pairs, trial.Pair{A: 1, B: 0})
			nA--
		}
		if nB > 0 {
			pairs = append(pairs, trial.Pair{A: 0, B: 1})
			nB--
		}
		if nTies > 0 {
			pairs = append(pairs, trial.Pair{A: 1, B: 1})
			nTies--
		}
	}
	return pairs
}

// InMemoryLedger is a map-backed run ledger for tests. Implements
// ports.RunLedger.
type InMemoryLedger struct {
	mu   sync.RWMutex
	runs map[core.RunID]*run.EvaluationRun
}

// NewInMemoryLedger creates an empty in-memory ledger
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{runs: make(map[core.RunID]*run.EvaluationRun)}
}

func (l *InMemoryLedger) SaveRun(ctx context.Context, r *run.EvaluationRun) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	stored := *r
	l.runs[r.ID] = &stored
	return nil
}

func (l *InMemoryLedger) GetRun(ctx context.Context, id core.RunID) (*run.EvaluationRun, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.runs[id]
	if !ok {
		return nil, core.ErrRunNotFound
	}
	out := *r
	return &out, nil
}

func (l *InMemoryLedger) ListRuns(ctx context.Context, limit int) ([]*run.EvaluationRun, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*run.EvaluationRun, 0, len(l.runs))
	for _, r := range l.runs {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
