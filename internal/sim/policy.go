package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

// Move is a target placement for the active pair: the anchor column and
// the number of clockwise turns from spawn.
type Move struct {
	Column   int
	Rotation int
}

// Policy decides where the active pair should go.
type Policy interface {
	Name() string
	Choose(g engine.Grid, p engine.Pair) Move
}

// PolicyFactory builds a policy for one game. seed is unique per game.
type PolicyFactory func(seed int64) Policy

var policies = map[string]PolicyFactory{
	"greedy": func(int64) Policy { return Greedy{} },
	"random": func(seed int64) Policy { return NewRandom(seed) },
}

// Policies lists the known policy names, sorted.
func Policies() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPolicy returns the factory registered under name.
func LookupPolicy(name string) (PolicyFactory, error) {
	f, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q (want one of %v)", name, Policies())
	}
	return f, nil
}

// Random places pairs uniformly at random. It has its own source so the
// piece sequence does not depend on the policy.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random policy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) Choose(engine.Grid, engine.Pair) Move {
	return Move{Column: r.rng.Intn(engine.Cols), Rotation: r.rng.Intn(4)}
}

// Greedy tries every column and rotation one pair ahead and keeps the
// placement that scores best. Ties go to the first candidate tried, so the
// choice is deterministic.
type Greedy struct{}

// Scoring weights.
const (
	clearWeight    = 100
	neighbourBonus = 10
	heightPenalty  = 3
	lostPenalty    = 500
	spawnPenalty   = 10000
)

// spawnDanger is the height of the spawn column at which a placement is
// treated as almost losing.
const spawnDanger = engine.Rows - 2

func (Greedy) Name() string { return "greedy" }

func (Greedy) Choose(g engine.Grid, p engine.Pair) Move {
	best := Move{Column: p.Anchor.X, Rotation: p.Rotation}
	bestScore := math.MinInt
	for rot := range 4 {
		for x := range engine.Cols {
			cand := p
			cand.Anchor = engine.C(x, p.Anchor.Y)
			cand.Rotation = rot
			out, placed, ok := engine.Place(g, cand)
			if !ok {
				continue
			}
			if score := evaluate(&out, placed); score > bestScore {
				best, bestScore = Move{Column: x, Rotation: rot}, score
			}
		}
	}
	return best
}

var around = [4]engine.Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// evaluate scores a well right after placed pieces settled into it.
func evaluate(g *engine.Grid, placed []engine.Piece) int {
	score := 0
	for _, gr := range engine.FindGroups(g) {
		score += gr.Size() * clearWeight
	}

	for _, p := range placed {
		for _, d := range around {
			n := p.Coord.Add(d.X, d.Y)
			if engine.InBounds(n.X, n.Y) && g.At(n.X, n.Y) == p.Kind {
				score += neighbourBonus
			}
		}
	}
	score -= (2 - len(placed)) * lostPenalty

	tallest := 0
	for x := range engine.Cols {
		tallest = max(tallest, g.ColumnHeight(x))
	}
	score -= tallest * heightPenalty
	if g.ColumnHeight(engine.SpawnX) >= spawnDanger {
		score -= spawnPenalty
	}
	return score
}
