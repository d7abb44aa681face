package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	g := ParseGrid("...D....")

	tests := []struct {
		name string
		pos  Coord
		want bool
	}{
		{"inside empty", C(0, 0), false},
		{"left wall", C(-1, 5), true},
		{"right wall", C(Cols, 5), true},
		{"below floor", C(2, Rows), true},
		{"above well", C(4, -1), false},
		{"far above well", C(4, -5), false},
		{"above well outside wall", C(-1, -1), true},
		{"occupied", C(3, Rows-1), true},
		{"beside occupied", C(4, Rows-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(&g, tt.pos))
		})
	}
}

func TestCollidesAnyPosition(t *testing.T) {
	var g Grid
	assert.False(t, Collides(&g, C(0, 0), C(1, 0)))
	assert.True(t, Collides(&g, C(0, 0), C(8, 0)))
	assert.False(t, Collides(&g))
}

func TestGridAccessOutOfRangePanics(t *testing.T) {
	var g Grid
	assert.Panics(t, func() { g.At(-1, 0) })
	assert.Panics(t, func() { g.At(0, Rows) })
	assert.Panics(t, func() { g.Set(Cols, 0, KindDog) })
	assert.NotPanics(t, func() { g.Set(Cols-1, Rows-1, KindDog) })
	assert.Equal(t, KindDog, g.At(Cols-1, Rows-1))
}

func TestParseGridAlignsToFloor(t *testing.T) {
	g := ParseGrid(
		"C.......",
		"DR.....B",
	)
	assert.Equal(t, KindCat, g.At(0, Rows-2))
	assert.Equal(t, KindDog, g.At(0, Rows-1))
	assert.Equal(t, KindRabbit, g.At(1, Rows-1))
	assert.Equal(t, KindBear, g.At(7, Rows-1))
	assert.Equal(t, 4, g.FilledCount())
	assert.Equal(t, 2, g.ColumnHeight(0))
	assert.Equal(t, 0, g.ColumnHeight(2))
	assert.Equal(t, "DR.....B", g.String()[len(g.String())-Cols:])
}

func TestKindRoundTripChar(t *testing.T) {
	for _, k := range AllKinds() {
		assert.Equal(t, k, KindFromChar(k.Char()), k.String())
	}
	assert.Len(t, AllKinds(), 5)
	assert.Equal(t, KindNone, KindFromChar('x'))
}

func TestGridReadsWorkOnReturnedValues(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.SetGrid(ParseGrid("D.......", "DC......"))

	assert.Equal(t, 3, s.Grid().FilledCount())
	assert.False(t, s.Grid().IsEmpty())
	assert.Equal(t, 2, s.Grid().ColumnHeight(0))
	assert.True(t, s.Grid().Occupied(1, Rows-1))
	assert.Equal(t, KindCat, s.Grid().At(1, Rows-1))
	assert.Contains(t, s.Grid().String(), "DC......")
	assert.Equal(t, 1, ParseGrid("...F").FilledCount())
}
