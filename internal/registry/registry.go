// Package registry provides a global registry for app factories. The game
// and the level editor register themselves in init() functions, letting the
// platform discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirmarshall/pacade/internal/core"
)

// Game is the interface every pacade app implements. Apps contain pure
// logic with no terminal dependencies; the platform handles input mapping,
// timing, and display.
type Game interface {
	// ID returns a unique identifier (e.g. "pacmaze"), used for CLI
	// commands.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or restarts the app state. The RuntimeConfig
	// provides screen dimensions and the tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The app is responsible for clearing it first.
	Render(dst *core.Screen)

	// State returns the current app state.
	State() core.GameState
}

// GameInfo contains metadata about a registered app.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of an app.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an app factory to the registry. Typically called from an
// app's init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: app %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered apps, sorted by ID.
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

// Create instantiates an app by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown app %q", id)
	}
	return f(), nil
}

// Exists reports whether an app with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
