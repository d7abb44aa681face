package puyo

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

const (
	cellWidth = 2 // Screen columns per well cell

	wellW  = engine.Cols*cellWidth + 2 // +2 for borders
	wellH  = engine.Rows + 2
	panelW = 14
	gap    = 2

	layoutW = wellW + gap + panelW
	wellTop = 2 // Title row and banner row above the well

	minScreenW = layoutW + 2
	minScreenH = wellTop + wellH + 1 // +1 for the controls line
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	originX := (g.screenW - layoutW) / 2
	well := core.NewRect(originX, wellTop, wellW, wellH)

	dst.DrawTextCentered(0, "P U Y O   P O P")
	if g.hud.banner != "" {
		x := well.X + (well.W-utf8.RuneCountInString(g.hud.banner))/2
		dst.DrawTextColored(x, 1, g.hud.banner, core.ColorBrightYellow)
	}

	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+gap, wellTop)
	dst.DrawTextColored(originX, well.Bottom(), "↑ rotate  ← → move  space drop", core.ColorGray)

	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// cellPos maps a well cell to its screen position.
func cellPos(well core.Rect, c engine.Coord) (int, int) {
	return well.X + 1 + c.X*cellWidth, well.Y + 1 + c.Y
}

// renderWell draws the border, the ghost, settled pieces, clear flashes and
// the active pair, in that order.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBoxColored(well, g.theme.border)

	grid := g.session.Grid()

	if g.theme.showGhost && !g.session.Processing() {
		if ghost, ok := g.session.Ghost(); ok {
			for _, p := range ghost {
				if p.Y < 0 || grid.Occupied(p.X, p.Y) {
					continue
				}
				x, y := cellPos(well, p.Coord)
				ghostGlyph.draw(dst, x, y)
			}
		}
	}

	for y := range engine.Rows {
		for x := range engine.Cols {
			c := engine.C(x, y)
			k := grid.At(x, y)
			sx, sy := cellPos(well, c)
			switch {
			case !k.IsEmpty():
				g.theme.glyph(k).draw(dst, sx, sy)
			case g.hud.flashing(c):
				flashGlyph.draw(dst, sx, sy)
			}
		}
	}

	if cur, ok := g.session.Current(); ok {
		for _, p := range cur.Pieces() {
			if p.Y < 0 {
				continue
			}
			x, y := cellPos(well, p.Coord)
			g.theme.glyph(p.Kind).draw(dst, x, y)
		}
	}
}

// renderPanel draws the next-pair preview and the stats column.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	box := core.NewRect(x, y+1, cellWidth+2, 4)
	dst.DrawBoxColored(box, g.theme.border)
	if next, ok := g.session.Next(); ok {
		// Rotation 0: secondary sits on top of primary.
		g.theme.glyph(next.Secondary).draw(dst, box.X+1, box.Y+1)
		g.theme.glyph(next.Primary).draw(dst, box.X+1, box.Y+2)
	}

	lines := []struct {
		label string
		value int
	}{
		{"SCORE", g.session.Score()},
		{"LEVEL", g.session.Level()},
		{"CLEARED", g.session.Cleared()},
		{"CHAIN", g.hud.lastChain},
		{"BEST CHAIN", g.session.MaxChain()},
	}
	row := box.Bottom() + 1
	for _, l := range lines {
		dst.DrawTextColored(x, row, l.label, core.ColorGray)
		dst.DrawText(x, row+1, fmt.Sprintf("%d", l.value))
		row += 2
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	if g.session.GameOver() {
		drawOverlay(dst, well,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.session.Score()),
			fmt.Sprintf("Best chain: %d", g.session.MaxChain()),
			"R: restart",
		)
		return
	}

	if g.paused {
		drawOverlay(dst, well, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a boxed block of lines centered over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
