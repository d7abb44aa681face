package puyo

import (
	"fmt"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

// bannerTicks is how long a chain or level banner stays up.
const bannerTicks = 90

// hud accumulates presentation state from engine events.
type hud struct {
	flashTicks int

	flash     map[engine.Coord]int // cell -> ticks left highlighted
	banner    string
	bannerTTL int

	lastChain  int
	lastPoints int
	locked     int
}

func (h *hud) apply(ev engine.Event) {
	switch e := ev.(type) {
	case engine.PieceLocked:
		h.locked++
	case engine.GroupCleared:
		if h.flashTicks <= 0 {
			return
		}
		if h.flash == nil {
			h.flash = make(map[engine.Coord]int)
		}
		for _, c := range e.Cells {
			h.flash[c] = h.flashTicks
		}
	case engine.ChainStep:
		h.lastChain = e.Index
		h.lastPoints = e.ScoreDelta
		if e.Index > 1 {
			h.show(fmt.Sprintf("%d CHAIN! +%d", e.Index, e.ScoreDelta))
		}
	case engine.LevelChanged:
		h.show(fmt.Sprintf("LEVEL %d", e.Level))
	case engine.GameOver:
		h.flash = nil
		h.banner = ""
		h.bannerTTL = 0
	}
}

func (h *hud) show(msg string) {
	h.banner = msg
	h.bannerTTL = bannerTicks
}

// step ages flashes and banners by one tick.
func (h *hud) step() {
	for c, n := range h.flash {
		if n <= 1 {
			delete(h.flash, c)
			continue
		}
		h.flash[c] = n - 1
	}
	if h.bannerTTL > 0 {
		h.bannerTTL--
		if h.bannerTTL == 0 {
			h.banner = ""
		}
	}
}

func (h *hud) flashing(c engine.Coord) bool {
	return h.flash[c] > 0
}
