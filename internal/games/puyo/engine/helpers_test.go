package engine

import "time"

// fixedRand replays vals in a loop, reduced modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// allDogs makes every drawn kind a dog.
func allDogs() *fixedRand {
	return &fixedRand{vals: []int{0}}
}

func newTestSession(rng RandomSource, delay time.Duration) *Session {
	return NewSession(Config{Rand: rng, SettleDelay: delay})
}

// dropAt slides the active pair to column x and hard-drops it.
func dropAt(s *Session, x int) {
	cur, ok := s.Current()
	if !ok {
		return
	}
	dx := 1
	if x < cur.Anchor.X {
		dx = -1
	}
	for cur.Anchor.X != x {
		if !s.TryMove(dx, 0) {
			break
		}
		cur, _ = s.Current()
	}
	s.HardDrop()
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
