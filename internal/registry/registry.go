// Package registry provides a global registry for CyberRunner frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberrunner/internal/config"
	"github.com/vovakirdan/cyberrunner/internal/core"
)

// Frontend is a host that drives the simulation: it owns timing, input,
// textures and drawing.
type Frontend interface {
	// ID returns a unique identifier (e.g., "window", "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits, ctx is cancelled, or a fatal error.
	Run(ctx context.Context, opts Options) error
}

// Options carries everything a frontend needs to start a session.
type Options struct {
	Config    config.RunnerConfig
	Runtime   core.RuntimeConfig
	AssetsDir string // root holding textures/
	Logger    *log.Logger
	LogFile   string // where the terminal frontend sends its log

	// Headless simulation only.
	ScriptPath string
	Duration   time.Duration
	Autopilot  bool
	Restart    bool
	Out        io.Writer
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
