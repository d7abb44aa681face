package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultSettleDelay is the pause on each side of gravity during a chain.
const DefaultSettleDelay = 300 * time.Millisecond

// Config holds the collaborators and pacing of a session.
type Config struct {
	// Rand supplies piece kinds. Nil means a source seeded with 1.
	Rand RandomSource

	// SettleDelay is the pause before and after gravity in each chain
	// iteration. Zero resolves chains synchronously.
	SettleDelay time.Duration

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// DefaultConfig returns a Config with the standard settle delay.
func DefaultConfig() Config {
	return Config{
		SettleDelay: DefaultSettleDelay,
	}
}

// Session is one game: the well, the active and queued pairs, score and
// progression, and the timers that drive them. All mutation goes through
// its methods; nothing is shared between sessions.
type Session struct {
	rng         RandomSource
	logger      *log.Logger
	settleDelay time.Duration

	grid    Grid
	current *Pair
	next    *Pair

	score        int
	level        int
	cleared      int
	maxChain     int
	pieces       int
	fallInterval time.Duration

	state      State
	processing bool
	phase      Phase
	chain      int

	fall  Timer
	delay Timer

	events []Event
}

// NewSession creates a session in the idle state.
func NewSession(cfg Config) *Session {
	s := &Session{
		rng:         cfg.Rand,
		logger:      cfg.Logger,
		settleDelay: cfg.SettleDelay,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.settleDelay < 0 {
		s.settleDelay = 0
	}
	s.Reset()
	return s
}

// Reset returns the session to idle with an empty well, score 0 and level 1.
// Any pending fall and any chain in flight are cancelled.
func (s *Session) Reset() {
	s.fall.Stop()
	s.cancelChain()

	s.grid = Grid{}
	s.current = nil
	s.next = nil
	s.score = 0
	s.level = 1
	s.cleared = 0
	s.maxChain = 0
	s.pieces = 0
	s.fallInterval = FallIntervalFor(1)
	s.state = StateIdle
	s.events = nil
}

// Start leaves the idle state by spawning the first pair.
// Returns false if the session was not idle.
func (s *Session) Start() bool {
	if s.state != StateIdle {
		return false
	}
	return s.SpawnNext()
}

// SpawnNext promotes the queued pair (or draws one), queues a fresh pair and
// places the new current pair at the spawn anchor. If that position is
// blocked the session ends without touching the well.
// Returns whether a pair was placed.
func (s *Session) SpawnNext() bool {
	if s.processing || s.current != nil || s.state == StateGameOver {
		return false
	}
	s.state = StateSpawning

	var pair Pair
	if s.next != nil {
		pair = *s.next
	} else {
		pair = NewPair(s.rng)
	}
	queued := NewPair(s.rng)
	s.next = &queued

	if pair.collides(&s.grid) {
		s.endGame()
		return false
	}

	s.current = &pair
	s.pieces++
	s.state = StateFalling
	s.fall.Every(s.fallInterval)
	return true
}

func (s *Session) endGame() {
	s.current = nil
	s.state = StateGameOver
	s.fall.Stop()
	s.cancelChain()

	s.logger.Debug("game over", "score", s.score, "level", s.level, "pieces", s.pieces)
	s.emit(GameOver{FinalScore: s.score})
}

// controllable reports whether player commands may touch the active pair.
func (s *Session) controllable() bool {
	return s.current != nil && !s.processing && s.state == StateFalling
}

// TryMove shifts the active pair by (dx, dy) if the target is free.
func (s *Session) TryMove(dx, dy int) bool {
	if !s.controllable() {
		return false
	}
	cand := s.current.Moved(dx, dy)
	if cand.collides(&s.grid) {
		return false
	}
	*s.current = cand
	return true
}

// TryRotate turns the active pair a quarter clockwise. When the turned pair
// is blocked it tries, in order: one column right, one column left of the
// original, and finally the original column with the turn undone. If the
// last candidate is still blocked nothing changes.
// Returns true only if the pair ended up in a new orientation.
func (s *Session) TryRotate() bool {
	if !s.controllable() {
		return false
	}
	orig := *s.current
	cand := orig.Rotated(1)
	if cand.collides(&s.grid) {
		cand = cand.Moved(1, 0)
		if cand.collides(&s.grid) {
			cand = cand.Moved(-2, 0)
			if cand.collides(&s.grid) {
				cand = cand.Moved(1, 0).Rotated(-1)
				if cand.collides(&s.grid) {
					return false
				}
			}
		}
	}
	*s.current = cand
	return cand.Rotation != orig.Rotation
}

// Tick is one fall step: the active pair drops a row or, if blocked, lands.
// A no-op without an active pair or while a chain is resolving.
// Returns whether the pair moved down.
func (s *Session) Tick() bool {
	if !s.controllable() {
		return false
	}
	cand := s.current.Moved(0, 1)
	if !cand.collides(&s.grid) {
		*s.current = cand
		return true
	}
	s.land()
	return false
}

// HardDrop drops the active pair until it lands. Returns the rows travelled.
func (s *Session) HardDrop() int {
	rows := 0
	for s.controllable() {
		if !s.Tick() {
			break
		}
		rows++
	}
	return rows
}

// land writes the active pair into the well and resolves the consequences.
func (s *Session) land() {
	s.state = StateLocking
	pieces := s.current.Pieces()
	s.current = nil

	placed := settle(&s.grid, pieces[:])
	s.emit(PieceLocked{Pieces: placed})

	s.beginChain()
}

// Advance moves session time forward by dt, firing the fall timer and the
// chain settle delay as they expire. The fall timer is held while a chain
// is resolving.
func (s *Session) Advance(dt time.Duration) {
	for dt > 0 {
		switch {
		case s.state == StateIdle || s.state == StateGameOver:
			return

		case s.phase != PhaseNone:
			fired, left := s.delay.Advance(dt)
			if !fired {
				return
			}
			dt = left
			s.resumeChain()

		default:
			fired, left := s.fall.Advance(dt)
			if !fired {
				return
			}
			dt = left
			s.Tick()
		}
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns the events emitted since the previous call, oldest first.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

// Grid returns a copy of the well.
func (s *Session) Grid() Grid { return s.grid }

// Current returns the active pair and whether there is one.
func (s *Session) Current() (Pair, bool) {
	if s.current == nil {
		return Pair{}, false
	}
	return *s.current, true
}

// Next returns the queued pair and whether there is one.
func (s *Session) Next() (Pair, bool) {
	if s.next == nil {
		return Pair{}, false
	}
	return *s.next, true
}

func (s *Session) Score() int                  { return s.score }
func (s *Session) Level() int                  { return s.level }
func (s *Session) Cleared() int                { return s.cleared }
func (s *Session) MaxChain() int               { return s.maxChain }
func (s *Session) Pieces() int                 { return s.pieces }
func (s *Session) FallInterval() time.Duration { return s.fallInterval }
func (s *Session) State() State                { return s.state }
func (s *Session) Processing() bool            { return s.processing }
func (s *Session) GameOver() bool              { return s.state == StateGameOver }

// Ghost returns where the active pair would rest if dropped now, computed the
// same way landing does. ok is false without an active pair.
func (s *Session) Ghost() (pieces []Piece, ok bool) {
	if s.current == nil {
		return nil, false
	}
	_, placed, _ := Place(s.grid, *s.current)
	return placed, true
}

// SetGrid replaces the well contents. Intended for tests and puzzle setups;
// it does not trigger matching.
func (s *Session) SetGrid(g Grid) {
	s.grid = g
}

// SetNext replaces the queued pair with one of the given kinds at the spawn
// anchor. Intended for tests and puzzle setups.
func (s *Session) SetNext(primary, secondary Kind) {
	p := Pair{Anchor: C(SpawnX, SpawnY), Primary: primary, Secondary: secondary}
	s.next = &p
}
