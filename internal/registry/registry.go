// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/sprite"
)

// Game is the interface a hosted simulation implements.
// Games contain pure logic with no dependency on the terminal host.
// The platform owns the clock, maps keys to actions and draws the surface.
type Game interface {
	// ID returns a unique identifier (e.g. "snake"), used for CLI commands
	// and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game. Called once at start and again
	// when the player chooses to play again.
	Reset(cfg core.RuntimeConfig) error

	// Input applies one player action outside the step cadence.
	Input(a core.Action) core.StepResult

	// Step advances the simulation by one step-trigger tick.
	Step() core.StepResult

	// Render draws the current frame onto dst, in surface units.
	Render(dst sprite.Surface)

	// State returns the current game state.
	State() core.GameState

	// StepInterval is the current step period; it shrinks as the score grows.
	StepInterval() time.Duration

	// RenderInterval is the fixed render period.
	RenderInterval() time.Duration

	// Board returns the drawable surface in units.
	Board() core.Rect
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
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

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
