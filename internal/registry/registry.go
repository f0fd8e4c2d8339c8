// Package registry provides a global registry of drivable tracks.
// Tracks register themselves in init() functions, allowing the CLI to
// discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-racer/internal/track"
)

// TrackInfo contains metadata about a registered track.
type TrackInfo struct {
	ID    string
	Title string
	Walls int
}

// Factory builds a fresh track definition.
type Factory func() track.Definition

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]TrackInfo)
	mu        sync.RWMutex
)

// Register adds a track factory to the registry.
// Panics if a track with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: track %q already registered", id))
	}

	factories[id] = f

	def := f()
	infos[id] = TrackInfo{
		ID:    id,
		Title: def.Name,
		Walls: len(def.Track.Walls()),
	}
}

// List returns information about all registered tracks, sorted by ID.
func List() []TrackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TrackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a registered track by its ID.
func Create(id string) (track.Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return track.Definition{}, fmt.Errorf("registry: unknown track %q", id)
	}
	return f(), nil
}

// Exists checks if a track with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
