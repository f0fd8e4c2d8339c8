// Package formats provides track file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// YAMLTrack represents the YAML structure for a track file.
type YAMLTrack struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Outer [][2]float64 `yaml:"outer"`
	Inner [][2]float64 `yaml:"inner"`
	Start *YAMLStart   `yaml:"start,omitempty"`
}

// YAMLStart is the vehicle's starting pose on the track.
type YAMLStart struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// Track represents a parsed track file.
type Track struct {
	ID       string
	Name     string
	Outer    []core.Vec
	Inner    []core.Vec
	Start    core.Vec
	Rotation float64
	HasStart bool
}

// ErrMissingID is returned for track files without an id.
var ErrMissingID = errors.New("track file has no id")

// ParseYAML parses a YAML track file.
func ParseYAML(data []byte) (Track, error) {
	var yt YAMLTrack
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Track{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yt.ID == "" {
		return Track{}, ErrMissingID
	}

	name := yt.Name
	if name == "" {
		name = yt.ID
	}

	t := Track{
		ID:    yt.ID,
		Name:  name,
		Outer: toVecs(yt.Outer),
		Inner: toVecs(yt.Inner),
	}
	if yt.Start != nil {
		t.Start = core.V(yt.Start.X, yt.Start.Y)
		t.Rotation = yt.Start.Rotation
		t.HasStart = true
	}
	return t, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func toVecs(points [][2]float64) []core.Vec {
	out := make([]core.Vec, len(points))
	for i, p := range points {
		out[i] = core.V(p[0], p[1])
	}
	return out
}
