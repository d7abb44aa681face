package engine

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
// Mutating it has no effect on the session.
type Snapshot struct {
	Grid         Grid
	Current      *Pair // nil when no pair is falling
	Next         *Pair // nil before the first spawn
	Score        int
	Level        int
	Cleared      int
	MaxChain     int
	Pieces       int
	FallInterval time.Duration
	State        State
	Phase        Phase
	Chain        int
	Processing   bool
	GameOver     bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:         s.grid,
		Score:        s.score,
		Level:        s.level,
		Cleared:      s.cleared,
		MaxChain:     s.maxChain,
		Pieces:       s.pieces,
		FallInterval: s.fallInterval,
		State:        s.state,
		Phase:        s.phase,
		Chain:        s.chain,
		Processing:   s.processing,
		GameOver:     s.state == StateGameOver,
	}
	if s.current != nil {
		cur := *s.current
		snap.Current = &cur
	}
	if s.next != nil {
		nxt := *s.next
		snap.Next = &nxt
	}
	return snap
}
