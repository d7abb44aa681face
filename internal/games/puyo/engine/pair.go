package engine

// Spawn anchor of every new pair.
const (
	SpawnX = Cols/2 - 1
	SpawnY = 0
)

// secondaryOffsets maps a rotation to the secondary piece offset from the anchor.
var secondaryOffsets = [4]Coord{
	{X: 0, Y: -1}, // above
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // below
	{X: -1, Y: 0}, // left
}

// RandomSource is the randomness a session draws kinds from.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Pair is the player-controlled two-piece unit. The primary piece sits on
// the anchor; the secondary orbits it according to Rotation.
// Pairs are values: Moved and Rotated return new pairs.
type Pair struct {
	Anchor    Coord
	Rotation  int
	Primary   Kind
	Secondary Kind
}

// NewPair draws two kinds independently and uniformly and places the pair
// at the spawn anchor with rotation 0.
func NewPair(rng RandomSource) Pair {
	return Pair{
		Anchor:    C(SpawnX, SpawnY),
		Rotation:  0,
		Primary:   randomKind(rng),
		Secondary: randomKind(rng),
	}
}

func randomKind(rng RandomSource) Kind {
	return Kind(rng.Intn(KindCount)) + KindDog
}

// SecondaryPos returns the cell occupied by the secondary piece.
func (p Pair) SecondaryPos() Coord {
	off := secondaryOffsets[normRotation(p.Rotation)]
	return p.Anchor.Add(off.X, off.Y)
}

// Cells returns the primary and secondary positions, in that order.
func (p Pair) Cells() [2]Coord {
	return [2]Coord{p.Anchor, p.SecondaryPos()}
}

// Pieces returns the primary and secondary pieces, in that order.
func (p Pair) Pieces() [2]Piece {
	return [2]Piece{
		{Coord: p.Anchor, Kind: p.Primary},
		{Coord: p.SecondaryPos(), Kind: p.Secondary},
	}
}

// Moved returns the pair translated by (dx, dy).
func (p Pair) Moved(dx, dy int) Pair {
	p.Anchor = p.Anchor.Add(dx, dy)
	return p
}

// Rotated returns the pair rotated by delta quarter turns clockwise.
func (p Pair) Rotated(delta int) Pair {
	p.Rotation = normRotation(p.Rotation + delta)
	return p
}

func (p Pair) collides(g *Grid) bool {
	cells := p.Cells()
	return Collides(g, cells[0], cells[1])
}

func normRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}
