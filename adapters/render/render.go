package render

import (
	"fmt"
	"strings"

	"bross/domain/plan"
	"bross/domain/run"
	"bross/domain/verdict"
)

// cell glyphs for the text chart
var glyphs = map[plan.Region]rune{
	plan.RegionPath:         '.',
	plan.RegionTwilight:     '?',
	plan.RegionNoDifference: '0',
	plan.RegionABetter:      'A',
	plan.RegionBBetter:      'B',
	plan.RegionBoundary:     'X',
}

// Chart renders a grid as a 31-line text chart. On a traversed grid the
// terminal cell carries the boundary marker.
func Chart(grid *plan.Grid) string {
	var sb strings.Builder
	rows := grid.Rows()
	for _, row := range rows {
		for _, region := range row {
			sb.WriteRune(glyphs[region])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Decision renders the terminal outcome as a one-line message
func Decision(o verdict.Outcome) string {
	if !o.Decided {
		return "no informative pairs: the procedure never started"
	}
	return o.Code.Message()
}

// Report builds a markdown report for a completed evaluation run
func Report(r *run.EvaluationRun) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Order-robustness evaluation %s\n\n", r.ID)
	fmt.Fprintf(&sb, "- Iterations: %d\n", r.Iterations)
	fmt.Fprintf(&sb, "- Significance level: %g\n", r.Alpha)
	fmt.Fprintf(&sb, "- Seed: %d\n", r.Seed)
	fmt.Fprintf(&sb, "- Pairs: %d (%d informative)\n\n", r.TotalPairs, r.InformativePairs)

	sb.WriteString("| Category | Count | Proportion | CI lower | CI upper |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, row := range r.Table.Rows {
		fmt.Fprintf(&sb, "| %s | %d | %.4f | %.4f | %.4f |\n",
			row.Category, row.Count, row.Proportion, row.Lower, row.Upper)
	}

	fmt.Fprintf(&sb, "\nWalk length: mean %.1f, median %.1f, p90 %.1f, range [%.0f, %.0f]\n",
		r.Steps.Mean, r.Steps.Median, r.Steps.P90, r.Steps.Min, r.Steps.Max)
	return sb.String()
}
