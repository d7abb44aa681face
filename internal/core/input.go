package core

import (
	"math/bits"
	"strings"
)

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Menu up; rotates in game
	ActionDown           // Menu down; soft drop in game
	ActionLeft           // Shift left
	ActionRight          // Shift right
	ActionRotate         // Rotate clockwise
	ActionDrop           // Hard drop
	ActionConfirm        // Confirm a menu selection
	ActionBack           // Leave for the menu
	ActionRestart        // Restart after game over
	ActionQuit           // Exit the program or session
	ActionPause          // Toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Rotate", "Drop",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
// It is a plain value: copying a frame snapshots it.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

func (f InputFrame) Empty() bool { return f.bits == 0 }

func (f InputFrame) Len() int { return bits.OnesCount32(f.bits) }

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, 0, f.Len())
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f InputFrame) String() string {
	names := make([]string, 0, f.Len())
	for _, a := range f.Actions() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
