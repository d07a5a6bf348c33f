package plan

import (
	"fmt"

	"bross/internal/errors"
)

// Size is the fixed edge length of Bross' decision map
const Size = 31

// Position addresses one grid cell, 1-indexed within [1,Size]
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position addresses a real cell
func (p Position) InBounds() bool {
	return p.Row >= 1 && p.Row <= Size && p.Col >= 1 && p.Col <= Size
}

// Grid is a Size x Size matrix of region codes. Being a value type, plain
// assignment yields an independent copy, which is what gives each traversal
// its private working grid.
type Grid struct {
	cells [Size][Size]Region
}

// At returns the region code at pos. pos must be in bounds.
func (g *Grid) At(pos Position) Region {
	return g.cells[pos.Row-1][pos.Col-1]
}

// Set overwrites the region code at pos. pos must be in bounds.
func (g *Grid) Set(pos Position, r Region) {
	g.cells[pos.Row-1][pos.Col-1] = r
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := *g
	return &out
}

// Rows returns the grid content as a fresh row-major slice of slices
func (g *Grid) Rows() [][]Region {
	out := make([][]Region, Size)
	for i := range g.cells {
		row := make([]Region, Size)
		copy(row, g.cells[i][:])
		out[i] = row
	}
	return out
}

// GridFromRows builds a grid from row-major data, enforcing the Size x Size
// shape. Region codes are not checked here; NewMap does that.
func GridFromRows(rows [][]Region) (*Grid, error) {
	if len(rows) != Size {
		return nil, errors.InvalidMap(
			fmt.Sprintf("decision map must have %d rows, got %d", Size, len(rows)))
	}
	g := &Grid{}
	for i, row := range rows {
		if len(row) != Size {
			return nil, errors.InvalidMap(
				fmt.Sprintf("decision map row %d must have %d columns, got %d", i+1, Size, len(row)))
		}
		copy(g.cells[i][:], row)
	}
	return g, nil
}
