package engine

import "sort"

// settle drops each piece independently by free fall and writes it into g.
// The lower piece settles first so the upper one lands on top of it.
// Pieces that come to rest above the well (y < 0) are discarded.
// Returns the pieces that were written, at their resting positions.
func settle(g *Grid, pieces []Piece) []Piece {
	ordered := make([]Piece, len(pieces))
	copy(ordered, pieces)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Y > ordered[j].Y
	})

	placed := make([]Piece, 0, len(ordered))
	for _, p := range ordered {
		for p.Y+1 < Rows && (p.Y+1 < 0 || !g.Occupied(p.X, p.Y+1)) {
			p.Y++
		}
		if p.Y < 0 {
			continue
		}
		g.Set(p.X, p.Y, p.Kind)
		placed = append(placed, p)
	}
	return placed
}

// Place drops p straight down onto a copy of g and settles it the way a
// landing does. ok is false when p already collides where it is.
func Place(g Grid, p Pair) (out Grid, placed []Piece, ok bool) {
	if p.collides(&g) {
		return g, nil, false
	}
	for {
		cand := p.Moved(0, 1)
		if cand.collides(&g) {
			break
		}
		p = cand
	}
	all := p.Pieces()
	placed = settle(&g, all[:])
	return g, placed, true
}
