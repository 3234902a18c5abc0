// Package registry provides a global registry of level layouts.
// Levels register themselves in init() functions, allowing the platform
// to discover and build worlds without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Facing is the initial orientation of a spawned enemy.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Point is a world position for a level object.
type Point struct {
	X, Y int
}

// EnemySpawn places a patrolling enemy.
type EnemySpawn struct {
	Point
	Facing Facing
}

// Layout is the fixed initial population of a world, excluding the player.
// Entities are created in slice order: obstacles first, then enemies.
type Layout struct {
	Obstacles []Point
	Enemies   []EnemySpawn
}

// Level is a named world layout.
type Level interface {
	// ID returns a unique identifier for this level (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Layout builds the initial obstacle and enemy placement.
	// Positions are absolute; ground is the configured ground line.
	Layout(ground int) Layout
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a level.
type Factory func() Level

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LevelInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a level by its ID.
// Returns an error if the level ID is not registered.
func Create(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
