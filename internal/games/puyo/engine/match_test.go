package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGroups(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		groups int
		cells  int
	}{
		{"empty well", nil, 0, 0},
		{"vertical four", []string{"D.......", "D.......", "D.......", "D......."}, 1, 4},
		{"horizontal four", []string{"CCCC...."}, 1, 4},
		{"three is not enough", []string{"RRR....."}, 0, 0},
		{"L shape of five", []string{"F.......", "F.......", "FFF....."}, 1, 5},
		{"diagonal does not connect", []string{"D.......", ".D......", "..D.....", "...D...."}, 0, 0},
		{"mixed kinds break runs", []string{"DDCDD..."}, 0, 0},
		{"two separate groups", []string{"DD....BB", "DD....BB"}, 2, 8},
		{"same kind split by other kind", []string{"DDDDCDDD"}, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ParseGrid(tt.rows...)
			groups := FindGroups(&g)
			assert.Len(t, groups, tt.groups)
			assert.Len(t, FindMatches(&g), tt.cells)
		})
	}
}

func TestFindGroupsReportsKind(t *testing.T) {
	g := ParseGrid(
		"B.......",
		"B.......",
		"BB......",
	)
	groups := FindGroups(&g)
	require.Len(t, groups, 1)
	assert.Equal(t, KindBear, groups[0].Kind)
	assert.Equal(t, []Coord{C(0, 11), C(0, 12), C(0, 13), C(1, 13)}, groups[0].Cells)
}

func TestFindMatchesIsSortedAndUnique(t *testing.T) {
	g := ParseGrid(
		"CC......",
		"CC..DDDD",
	)
	got := FindMatches(&g)
	want := []Coord{C(0, 12), C(1, 12), C(0, 13), C(1, 13), C(4, 13), C(5, 13), C(6, 13), C(7, 13)}
	assert.Equal(t, want, got)
}

// Every reported group must be one kind, 4-connected, at least MatchSize,
// and no cell may appear twice across the whole result.
func TestFindGroupsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 300 {
		var g Grid
		for y := range Rows {
			for x := range Cols {
				if rng.Intn(3) == 0 {
					continue
				}
				g[y][x] = Kind(rng.Intn(3)) + KindDog
			}
		}

		seen := map[Coord]bool{}
		for _, gr := range FindGroups(&g) {
			require.GreaterOrEqual(t, gr.Size(), MatchSize)

			members := map[Coord]bool{}
			for _, c := range gr.Cells {
				require.Equal(t, gr.Kind, g.At(c.X, c.Y))
				require.False(t, seen[c], "cell %v in two groups", c)
				seen[c] = true
				members[c] = true
			}

			// flood from the first cell using only members must reach all of them
			reached := map[Coord]bool{gr.Cells[0]: true}
			stack := []Coord{gr.Cells[0]}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range neighbours {
					n := cur.Add(d.X, d.Y)
					if members[n] && !reached[n] {
						reached[n] = true
						stack = append(stack, n)
					}
				}
			}
			require.Len(t, reached, len(members))
		}

		assert.Len(t, FindMatches(&g), len(seen))
	}
}
