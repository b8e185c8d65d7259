// Package registry defines the Game and Frontend contracts and keeps a global
// registry of frontend factories. Frontends register themselves in init()
// functions, so the CLI can select one by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the interface a frontend drives.
// Games contain pure logic with no terminal dependencies.
// The frontend handles input mapping, timing, and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "tetris").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame, applying the queued actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, level, game over, paused).
	State() core.GameState

	// FrameInterval returns how long the frontend waits between Step calls.
	// It shrinks as the level rises.
	FrameInterval() time.Duration

	// MinSize returns the smallest screen the game can render into.
	MinSize() (w, h int)
}

// RunOptions carries everything a frontend needs besides the game itself.
type RunOptions struct {
	Config core.RuntimeConfig
	Keys   core.KeyMap
	Logger *log.Logger
	Color  bool
}

// Frontend owns the terminal for the duration of a game session.
type Frontend interface {
	// Name returns the identifier used by --frontend.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Run drives game until the player quits, the game ends (for frontends
	// that stop at game over) or ctx is cancelled.
	Run(ctx context.Context, game Game, opts RunOptions) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered frontends, sorted by name.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FrontendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by its name.
// Returns an error if the name is not registered.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
