package puyo

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

func TestRenderLayout(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"P U Y O", "NEXT", "SCORE", "LEVEL", "BEST CHAIN"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	originX := (80 - layoutW) / 2
	if r := screen.Get(originX, wellTop); r != '┌' {
		t.Errorf("well corner = %q, expected ┌", r)
	}
}

func TestRenderActivePair(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cur := currentPair(t, g)
	well := core.NewRect((80-layoutW)/2, wellTop, wellW, wellH)
	x, y := cellPos(well, cur.Anchor)

	want := g.theme.glyph(cur.Primary)
	got := screen.GetCell(x, y)
	if got.Rune != want.runes[0] || got.Color != want.color {
		t.Errorf("primary cell = %+v, expected %q in %v", got, want.runes[0], want.color)
	}
	// The secondary starts above the well and is not drawn.
	if r := screen.Get(x, y-1); r != '─' {
		t.Errorf("border above spawn = %q, expected ─", r)
	}
}

func TestRenderGhost(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	well := core.NewRect((80-layoutW)/2, wellTop, wellW, wellH)
	x, y := cellPos(well, engine.C(engine.SpawnX, engine.Rows-1))
	if r := screen.Get(x, y); r != ghostGlyph.runes[0] {
		t.Errorf("floor cell under spawn = %q, expected ghost", r)
	}

	g.theme.showGhost = false
	g.Render(screen)
	if r := screen.Get(x, y); r != ' ' {
		t.Errorf("ghost drawn while disabled: %q", r)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}

	g.Step(press(core.ActionPause))
	g.Session().SetGrid(stackColumn(engine.SpawnX))
	g.Step(press(core.ActionDrop))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "R: restart") {
		t.Error("expected game over overlay")
	}
}

func TestRenderBeforeReset(t *testing.T) {
	screen := core.NewScreen(10, 3)
	New().Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unstarted game should render nothing")
	}
}
