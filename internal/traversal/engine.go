package traversal

import (
	"fmt"

	"bross/domain/plan"
	"bross/domain/trial"
	"bross/domain/verdict"
	"bross/internal/errors"
)

// Result carries the terminal outcome of one walk plus the working grid it
// annotated with path and boundary markers. The grid is data for a rendering
// collaborator; the engine never draws anything. Grid is nil when the walk
// never started (no informative pairs).
type Result struct {
	Outcome verdict.Outcome
	Grid    *plan.Grid
	// Steps is the number of informative pairs actually consumed; on early
	// exit the remaining pairs are never read.
	Steps int
}

// Engine executes deterministic walks over a fixed decision map. Each walk
// works on a private grid copy, so an Engine is safe for concurrent use.
type Engine struct {
	m *plan.Map
}

// NewEngine creates an engine bound to a validated decision map
func NewEngine(m *plan.Map) *Engine {
	return &Engine{m: m}
}

// Run walks the informative-pair sequence over a fresh copy of the map.
//
// Every pair moves the position one step: toward A (row-1) when A responded
// and B did not, toward B (col+1) otherwise. The region under the new
// position decides what happens next: a conclusive region (no-difference,
// A-better, B-better) terminates immediately, the twilight zone terminates
// only when the sequence is exhausted on it, and anything else lets the walk
// continue. A walk that runs out of pairs without reaching a conclusive cell
// is inconclusive, i.e. twilight.
func (e *Engine) Run(pairs trial.PairSequence) (*Result, error) {
	if len(pairs) == 0 {
		return &Result{Outcome: verdict.Absent()}, nil
	}

	grid := e.m.InitialGrid()
	pos := e.m.StartingPosition()

	for k, p := range pairs {
		if !p.Informative() {
			return nil, errors.InvalidInput(
				fmt.Sprintf("pair %d is non-informative (%d,%d); filter ties before the walk", k, p.A, p.B))
		}

		if p.A == 1 {
			pos.Row-- // move toward A
		} else {
			pos.Col++ // move toward B
		}
		if !pos.InBounds() {
			return nil, errors.OutOfBounds(
				fmt.Sprintf("step %d leaves the grid at (%d,%d)", k+1, pos.Row, pos.Col))
		}

		// read the region before any mutation of this cell
		region := grid.At(pos)
		last := k == len(pairs)-1

		switch region {
		case plan.RegionNoDifference, plan.RegionABetter, plan.RegionBBetter:
			grid.Set(pos, plan.RegionBoundary)
			return &Result{
				Outcome: verdict.Decided(codeFor(region)),
				Grid:    grid,
				Steps:   k + 1,
			}, nil
		case plan.RegionTwilight:
			if last {
				grid.Set(pos, plan.RegionBoundary)
				return &Result{
					Outcome: verdict.Decided(verdict.CodeTwilight),
					Grid:    grid,
					Steps:   k + 1,
				}, nil
			}
		}

		grid.Set(pos, plan.RegionPath)
	}

	// sequence exhausted without a conclusive cell
	return &Result{
		Outcome: verdict.Decided(verdict.CodeTwilight),
		Grid:    grid,
		Steps:   len(pairs),
	}, nil
}

func codeFor(r plan.Region) verdict.Code {
	switch r {
	case plan.RegionNoDifference:
		return verdict.CodeNoDifference
	case plan.RegionABetter:
		return verdict.CodeABetter
	default:
		return verdict.CodeBBetter
	}
}
