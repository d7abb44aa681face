package engine

import "fmt"

// Coord is a cell position. X grows to the right, Y grows downward.
// Y may be negative for the hidden rows above the well.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// key packs an in-grid coordinate into a single integer, row-major.
func (c Coord) key() int {
	return c.Y*Cols + c.X
}

func coordFromKey(k int) Coord {
	return Coord{X: k % Cols, Y: k / Cols}
}

// Piece is a single kind-tagged unit at a position.
type Piece struct {
	Coord
	Kind Kind
}
