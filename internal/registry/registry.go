// Package registry provides a global registry for level generators.
// Generators register themselves in init() functions, allowing the game and
// the CLI to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/robojobs/internal/level"
)

// Options carries the knobs every generator understands. Sizes are in rooms
// and tiles; generators that build fixed layouts ignore them.
type Options struct {
	Width, Height         int
	RoomWidth, RoomHeight int
	Seed                  int64
}

// Generator builds fresh levels.
type Generator interface {
	// ID returns a unique identifier (e.g., "deathmountain").
	// Used for CLI flags and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate builds a new level. The same options and seed give the same level.
	Generate(opts Options) (level.State, error)
}

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a generator.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered generators, sorted by ID.
func List() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GeneratorInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Generate is shorthand for Create followed by Generate.
func Generate(id string, opts Options) (level.State, error) {
	g, err := Create(id)
	if err != nil {
		return level.State{}, err
	}
	return g.Generate(opts)
}
