package plan

import (
	"fmt"

	"bross/internal/errors"
)

// Map is an immutable decision map: the canonical region grid plus the fixed
// coordinate every walk starts from.
type Map struct {
	grid  Grid
	start Position
}

// NewMap validates a canonical grid and starting position. Grids containing
// codes outside the five canonical regions are rejected, as is a start
// coordinate off the grid.
func NewMap(grid *Grid, start Position) (*Map, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r + 1, Col: c + 1}
			if region := grid.At(pos); !region.Canonical() {
				return nil, errors.InvalidMap(
					fmt.Sprintf("cell (%d,%d) holds non-canonical region %q", pos.Row, pos.Col, region))
			}
		}
	}
	if !start.InBounds() {
		return nil, errors.InvalidMap(
			fmt.Sprintf("starting position (%d,%d) is off the grid", start.Row, start.Col))
	}
	return &Map{grid: *grid, start: start}, nil
}

// NewMapFromRows validates shape and content of row-major map data
func NewMapFromRows(rows [][]Region, start Position) (*Map, error) {
	grid, err := GridFromRows(rows)
	if err != nil {
		return nil, err
	}
	return NewMap(grid, start)
}

// InitialGrid returns a private mutable copy of the canonical grid
func (m *Map) InitialGrid() *Grid {
	return m.grid.Clone()
}

// StartingPosition returns the fixed coordinate walks begin at
func (m *Map) StartingPosition() Position {
	return m.start
}

// regionAt evaluates the plan geometry in win coordinates: u = A-wins =
// 30-row, v = B-wins = col-1, d = u-v, n = u+v. The truncation band at
// n >= 52 is fully terminal, which is what keeps every legal walk inside
// the grid.
func regionAt(u, v int) Region {
	d := u - v
	n := u + v
	switch {
	case n >= 52 && d >= 4:
		return RegionABetter
	case n >= 52 && d <= -4:
		return RegionBBetter
	case n >= 52:
		return RegionNoDifference
	case d >= 7:
		return RegionABetter
	case d <= -7:
		return RegionBBetter
	case n >= 32 && d >= -3 && d <= 3:
		return RegionNoDifference
	case n >= 32:
		return RegionTwilight
	default:
		return RegionPath
	}
}

// defaultStart is (row=30, col=1): zero A-wins, zero B-wins
var defaultStart = Position{Row: 30, Col: 1}

var defaultMap = mustDefaultMap()

func mustDefaultMap() *Map {
	g := &Grid{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			u := 30 - (r + 1)
			v := c
			if u < 0 {
				// row 31 sits below the start and is unreachable
				g.cells[r][c] = RegionPath
				continue
			}
			g.cells[r][c] = regionAt(u, v)
		}
	}
	m, err := NewMap(g, defaultStart)
	if err != nil {
		panic(err)
	}
	return m
}

// Default returns the fixed Bross sequential plan. The grid, its starting
// coordinate and its region semantics are constants of the method, not
// configurable parameters.
func Default() *Map {
	return defaultMap
}
