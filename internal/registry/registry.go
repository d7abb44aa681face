// Package registry maps game IDs to factories.
// Game packages register themselves in init(), so the CLI, the TUI and
// the SSH server can build a game by name without importing it directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// Game is what the platform drives. Implementations hold pure logic:
// no Bubble Tea, no storage. The platform owns input mapping, the tick
// clock and the terminal.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string

	// Title is shown in menus.
	Title() string

	// Reset starts a new run. Called once before the first Step and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one fixed tick of cfg.TickDuration().
	Step(in core.InputFrame) core.StepResult

	// Render draws the whole frame into dst, clearing it first.
	Render(dst *core.Screen)

	State() core.GameState
}

// StatsReporter is implemented by games that can describe a run in more
// detail than a score. The platform stores these on game over.
type StatsReporter interface {
	Stats() core.RunStats
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the run. Games without it are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. Panics on a duplicate ID or an empty one.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// StatsOf returns detailed run stats when g reports them, and falls back
// to the score and level from State otherwise.
func StatsOf(g Game) core.RunStats {
	if r, ok := g.(StatsReporter); ok {
		return r.Stats()
	}
	st := g.State()
	return core.RunStats{Score: st.Score, Level: st.Level}
}
