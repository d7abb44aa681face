package engine

// ApplyGravity compacts every column toward the floor, preserving the
// vertical order of the pieces. Returns whether any piece moved.
// A fully compacted grid is left untouched.
func ApplyGravity(g *Grid) bool {
	moved := false
	for x := range Cols {
		write := Rows - 1
		for y := Rows - 1; y >= 0; y-- {
			k := g[y][x]
			if k.IsEmpty() {
				continue
			}
			if y != write {
				g[write][x] = k
				g[y][x] = KindNone
				moved = true
			}
			write--
		}
	}
	return moved
}
