package puyo

import (
	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

// glyph is how one kind is drawn: two runes, since each well cell is two columns wide.
type glyph struct {
	runes [2]rune
	color core.Color
}

// Theme resolves kinds to glyphs.
type Theme struct {
	kinds     [engine.KindCount + 1]glyph
	border    core.Color
	showGhost bool
}

var (
	ghostGlyph = glyph{runes: [2]rune{':', ':'}, color: core.ColorGray}
	flashGlyph = glyph{runes: [2]rune{'*', '*'}, color: core.ColorBrightWhite}
	emptyGlyph = glyph{runes: [2]rune{' ', ' '}}
)

// NewTheme builds a theme from config. Missing or malformed entries fall back
// to the kind's letter doubled, in the default color.
func NewTheme(cfg config.ThemeConfig) Theme {
	t := Theme{showGhost: cfg.ShowGhost, border: core.ColorDefault}
	if c, ok := core.ParseColor(cfg.BorderColor); ok {
		t.border = c
	}

	t.kinds[engine.KindNone] = emptyGlyph
	for _, k := range engine.AllKinds() {
		ch := rune(k.Char())
		t.kinds[k] = glyph{runes: [2]rune{ch, ch}}
	}

	for i, style := range cfg.Pieces {
		k := engine.Kind(i + 1)
		if !k.Valid() {
			break
		}
		g := t.kinds[k]
		if r := []rune(style.Glyph); len(r) == 2 {
			g.runes = [2]rune{r[0], r[1]}
		}
		if c, ok := core.ParseColor(style.Color); ok {
			g.color = c
		}
		t.kinds[k] = g
	}
	return t
}

func (t Theme) glyph(k engine.Kind) glyph {
	if int(k) >= len(t.kinds) {
		return emptyGlyph
	}
	return t.kinds[k]
}

func (g glyph) draw(dst *core.Screen, x, y int) {
	dst.SetColored(x, y, g.runes[0], g.color)
	dst.SetColored(x+1, y, g.runes[1], g.color)
}
