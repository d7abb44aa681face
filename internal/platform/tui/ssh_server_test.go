package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func newTestSession() SessionModel {
	return NewSessionModel(nil, testConfig(), NewScreenRenderer(nil), log.New(io.Discard))
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()
	for i, item := range m.menu.items {
		if item.GameID == "fake" {
			m.menu.cursor = i
		}
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.game == nil {
		t.Fatalf("expected game screen, got %v", m.current)
	}
	if m.game.game.ID() != "fake" {
		t.Errorf("game = %q", m.game.game.ID())
	}

	// Pause, let the tick record it, then leave
	m.game.gameState.Paused = true
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.game != nil {
		t.Errorf("expected menu after back, got %v", m.current)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := newTestSession()

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatalf("expected scores screen, got %v", m.current)
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Errorf("expected menu, got %v", m.current)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := updateSession(t, newTestSession(), runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := updateSession(t, newTestSession(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.menu.Config().ScreenH != 40 {
		t.Errorf("config = %+v", m.config)
	}
}
