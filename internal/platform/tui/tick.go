// Package tui provides the Bubble Tea front end: the game loop, the title
// menu, the scoreboard and the SSH server that serves all three.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one simulated tick from now, so wall
// time and game time advance at the same rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
