// Package registry keeps the playable game variants by ID.
// Games register a factory from init(), so the CLI and the TUI can list
// and start them without importing any game package directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
)

// Game is the contract between a game and the platform.
// A game holds pure logic: the platform owns timing, key mapping and
// terminal output.
type Game interface {
	// ID returns the identifier used on the command line and in the
	// score table (e.g. "hexmatch", "squarematch").
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a fresh game. It is called once at start and again on
	// restart. The RuntimeConfig carries screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, moves and the game-over flag.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (known: %s)", id, strings.Join(IDs(), ", "))
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
