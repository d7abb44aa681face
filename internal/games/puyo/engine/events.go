package engine

import "time"

// Event is something a session reports to its collaborators (renderer,
// sound, score keeping). Events are drained with Session.DrainEvents.
type Event interface {
	isEvent()
}

// PieceLocked is emitted when a landed pair has been written into the well.
// Pieces holds the resting positions; it may hold fewer than two pieces
// when one came to rest above the well.
type PieceLocked struct {
	Pieces []Piece
}

// GroupCleared is emitted for every group removed during a chain step.
type GroupCleared struct {
	Kind  Kind
	Cells []Coord
	Chain int
}

// ChainStep is emitted once per chain iteration that cleared something.
type ChainStep struct {
	Index      int
	ScoreDelta int
	Cleared    int
}

// LevelChanged is emitted when the level rises.
type LevelChanged struct {
	Level        int
	FallInterval time.Duration
}

// GameOver is emitted when a new pair cannot be placed.
type GameOver struct {
	FinalScore int
}

func (PieceLocked) isEvent()  {}
func (GroupCleared) isEvent() {}
func (ChainStep) isEvent()    {}
func (LevelChanged) isEvent() {}
func (GameOver) isEvent()     {}
