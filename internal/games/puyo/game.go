// Package puyo adapts the falling-pair engine to the platform: it maps
// input actions to session commands, drives the session clock one tick at
// a time, and turns engine events into HUD feedback.
package puyo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

// GameID is the registry key and the game_id stored with scores.
const GameID = "puyo"

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultPuyoConfig()
	logger     *log.Logger
)

// Configure sets the configuration used by games created afterwards.
func Configure(cfg config.PuyoConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// SetLogger sets the logger handed to new sessions. Nil discards output.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is one player's run.
type Game struct {
	cfg    config.PuyoConfig
	theme  Theme
	logger *log.Logger

	session *engine.Session
	runID   string

	tick         uint64
	tickDuration time.Duration

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	hud hud
}

// New creates a game using the current package configuration.
func New() *Game {
	settingsMu.RLock()
	cfg, l := settings, logger
	settingsMu.RUnlock()

	return &Game{
		cfg:    cfg,
		theme:  NewTheme(cfg.Theme),
		logger: l,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Puyo Pop"
}

// Reset starts a fresh run seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = engine.NewSession(engine.Config{
		Rand:        rand.New(rand.NewSource(cfg.Seed)),
		SettleDelay: g.cfg.Timing.SettleDelay(),
		Logger:      g.logger,
	})
	g.runID = uuid.NewString()
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.hud = hud{flashTicks: g.cfg.Timing.FlashTicks}
	g.tickDuration = cfg.TickDuration()

	g.checkScreenSize()
	g.session.Start()
	g.collectEvents()
}

// Resize follows a terminal resize without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize flags terminals that cannot fit the well and side panel.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies this tick's input and advances the session clock by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.session.TryMove(-1, 0)
	case in.Has(core.ActionRight):
		g.session.TryMove(1, 0)
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotate) {
		g.session.TryRotate()
	}

	switch {
	case in.Has(core.ActionDrop):
		g.session.HardDrop()
	case in.Has(core.ActionDown):
		g.session.Tick()
	}

	g.session.Advance(g.tickDuration)
	g.collectEvents()
	g.hud.step()

	return core.StepResult{State: g.State()}
}

func (g *Game) collectEvents() {
	for _, ev := range g.session.DrainEvents() {
		g.hud.apply(ev)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats describes the run for the score table.
func (g *Game) Stats() core.RunStats {
	if g.session == nil {
		return core.RunStats{Level: 1}
	}
	return core.RunStats{
		RunID:    g.runID,
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		MaxChain: g.session.MaxChain(),
		Cleared:  g.session.Cleared(),
		Pieces:   g.session.Pieces(),
	}
}

// Session exposes the underlying engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/X: Rotate | ↓: Soft drop | Space: Drop | P: Pause | R: Restart | Q: Quit"
}
