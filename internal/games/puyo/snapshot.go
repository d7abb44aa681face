package puyo

import "github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	RunID    string
	Paused   bool
	TooSmall bool
	Engine   engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		RunID:    g.runID,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.session != nil {
		s.Engine = g.session.Snapshot()
	}
	return s
}
