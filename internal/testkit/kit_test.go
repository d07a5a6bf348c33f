package testkit

import (
	"context"
	"math/rand"
	"testing"

	"bross/domain/core"
	"bross/domain/run"
)

func TestGeneratePairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pairs := GeneratePairs(rng, 200, 0.9, 0.1)

	if len(pairs) != 200 {
		t.Fatalf("expected 200 pairs, got %d", len(pairs))
	}
	aWins := 0
	for _, p := range pairs {
		if p.A != 0 && p.A != 1 || p.B != 0 && p.B != 1 {
			t.Fatalf("non-binary pair generated: %v", p)
		}
		if p.A == 1 && p.B == 0 {
			aWins++
		}
	}
	// pA=0.9, pB=0.1 makes A-wins overwhelmingly likely
	if aWins < 100 {
		t.Errorf("expected a strong A majority, got %d A-wins of 200", aWins)
	}
}

func TestFavoringA_Composition(t *testing.T) {
	pairs := FavoringA(9, 2, 9)
	if len(pairs) != 20 {
		t.Fatalf("expected 20 pairs, got %d", len(pairs))
	}

	var nA, nB, ties int
	for _, p := range pairs {
		switch {
		case p.A == 1 && p.B == 0:
			nA++
		case p.A == 0 && p.B == 1:
			nB++
		default:
			ties++
		}
	}
	if nA != 9 || nB != 2 || ties != 9 {
		t.Fatalf("expected 9/2/9 composition, got %d/%d/%d", nA, nB, ties)
	}
}

func TestInMemoryLedger_RoundTrip(t *testing.T) {
	ledger := NewInMemoryLedger()
	ctx := context.Background()

	r := &run.EvaluationRun{
		ID:         core.NewRunID(),
		CreatedAt:  core.Now(),
		Iterations: 100,
		Alpha:      0.05,
	}
	if err := ledger.SaveRun(ctx, r); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := ledger.GetRun(ctx, r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != r.ID || got.Iterations != 100 {
		t.Fatalf("round trip mangled the run: %+v", got)
	}

	runs, err := ledger.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestInMemoryLedger_NotFound(t *testing.T) {
	ledger := NewInMemoryLedger()
	if _, err := ledger.GetRun(context.Background(), core.RunID("missing")); err != core.ErrRunNotFound {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}
