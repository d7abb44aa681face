package engine

import (
	"fmt"
	"strings"
)

// Well dimensions. Fixed for every session.
const (
	Cols = 8
	Rows = 14
)

// Grid is the well. Row 0 is the top, row Rows-1 the floor.
// It is a value type; assigning a Grid copies it.
type Grid [Rows][Cols]Kind

// InBounds reports whether (x, y) lies inside the well.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the kind stored at (x, y).
// Panics on out-of-range coordinates: callers only pass positions
// derived from bounded iteration, so a miss is a logic error.
func (g Grid) At(x, y int) Kind {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("engine: grid read out of range at (%d,%d)", x, y))
	}
	return g[y][x]
}

// Set stores k at (x, y). Panics on out-of-range coordinates.
func (g *Grid) Set(x, y int, k Kind) {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("engine: grid write out of range at (%d,%d)", x, y))
	}
	g[y][x] = k
}

// Occupied reports whether (x, y) holds a piece.
func (g Grid) Occupied(x, y int) bool {
	return !g.At(x, y).IsEmpty()
}

// FilledCount returns the number of occupied cells.
func (g Grid) FilledCount() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if !g[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (g Grid) IsEmpty() bool {
	return g.FilledCount() == 0
}

// ColumnHeight returns how many cells of column x are occupied, counted from
// the topmost occupied cell down to the floor.
func (g Grid) ColumnHeight(x int) int {
	for y := range Rows {
		if g.Occupied(x, y) {
			return Rows - y
		}
	}
	return 0
}

// Collides reports whether any of the positions is illegal on g: outside the
// side walls, below the floor, or on an occupied cell. Rows above the well
// (y < 0) are always free.
func Collides(g *Grid, positions ...Coord) bool {
	for _, p := range positions {
		if p.X < 0 || p.X >= Cols || p.Y >= Rows {
			return true
		}
		if p.Y >= 0 && g.Occupied(p.X, p.Y) {
			return true
		}
	}
	return false
}

// String dumps the grid one row per line using Kind.Char.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := range Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Cols {
			sb.WriteByte(g[y][x].Char())
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from text rows aligned to the floor: the last row
// given is row Rows-1. Rows shorter than Cols are padded with empty cells.
// Letters follow Kind.Char; anything else is empty.
func ParseGrid(rows ...string) Grid {
	var g Grid
	if len(rows) > Rows {
		rows = rows[len(rows)-Rows:]
	}
	top := Rows - len(rows)
	for i, row := range rows {
		for x := 0; x < len(row) && x < Cols; x++ {
			g[top+i][x] = KindFromChar(row[x])
		}
	}
	return g
}
