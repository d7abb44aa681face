package engine

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateFalling
	StateLocking
	StateChainResolving
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateChainResolving:
		return "chain_resolving"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase is the position of the chain processor inside one chain iteration.
type Phase int

const (
	PhaseNone  Phase = iota // no chain in flight
	PhaseScan               // about to look for groups
	PhaseClear              // groups removed, waiting before gravity
	PhaseFall               // gravity applied, waiting before the next scan
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseScan:
		return "scan"
	case PhaseClear:
		return "clear"
	case PhaseFall:
		return "fall"
	default:
		return "unknown"
	}
}
