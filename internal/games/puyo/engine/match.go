package engine

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// MatchSize is the smallest group that clears.
const MatchSize = 4

// Group is a 4-connected component of one kind.
type Group struct {
	Kind  Kind
	Cells []Coord
}

// Size returns the number of cells in the group.
func (gr Group) Size() int {
	return len(gr.Cells)
}

var neighbours = [4]Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// FindGroups returns every 4-connected component of identical non-empty
// kinds with at least MatchSize members. Groups come out in row-major order
// of their first cell; cells within a group are sorted row-major.
func FindGroups(g *Grid) []Group {
	var visited [Rows * Cols]bool
	queue := make([]Coord, 0, Rows*Cols)
	var groups []Group

	for y := range Rows {
		for x := range Cols {
			start := C(x, y)
			kind := g.At(x, y)
			if kind.IsEmpty() || visited[start.key()] {
				continue
			}

			queue = queue[:0]
			queue = append(queue, start)
			visited[start.key()] = true

			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				for _, d := range neighbours {
					next := cur.Add(d.X, d.Y)
					if !InBounds(next.X, next.Y) || visited[next.key()] {
						continue
					}
					if g.At(next.X, next.Y) != kind {
						continue
					}
					visited[next.key()] = true
					queue = append(queue, next)
				}
			}

			if len(queue) < MatchSize {
				continue
			}
			cells := make([]Coord, len(queue))
			copy(cells, queue)
			sortCoords(cells)
			groups = append(groups, Group{Kind: kind, Cells: cells})
		}
	}
	return groups
}

// FindMatches returns the union of all clearing groups as a deduplicated,
// row-major sorted list of cells.
func FindMatches(g *Grid) []Coord {
	return unionCells(FindGroups(g))
}

func unionCells(groups []Group) []Coord {
	total := 0
	for _, gr := range groups {
		total += gr.Size()
	}
	if total == 0 {
		return nil
	}

	seen := intmap.New[int, Kind](total)
	out := make([]Coord, 0, total)
	for _, gr := range groups {
		for _, c := range gr.Cells {
			if _, dup := seen.Get(c.key()); dup {
				continue
			}
			seen.Put(c.key(), gr.Kind)
			out = append(out, c)
		}
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].key() < cs[j].key()
	})
}
