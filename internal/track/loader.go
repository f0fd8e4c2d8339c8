package track

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track/formats"
)

// Start is the vehicle pose a race begins from.
type Start struct {
	Position core.Vec // top-left of the vehicle's bounding box
	Rotation float64  // degrees, positive = left
}

// DefaultStart is the starting pose of the canonical circuit.
func DefaultStart() Start {
	return Start{Position: core.V(15, 640), Rotation: 90}
}

// Definition is a named track together with its starting pose.
type Definition struct {
	ID       string
	Name     string
	Track    *Track
	Start    Start
	FilePath string
}

// Loader handles loading track files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new track loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all track files.
// Unparsable files are skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		def, err := LoadFile(path)
		if err != nil {
			return nil
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs, nil
}

// LoadByID loads the track with the given ID from the loader's root.
func (l *Loader) LoadByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("track not found: %s", id)
}

// LoadFile loads a single track file.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	var parsed formats.Track
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		err = fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	start := DefaultStart()
	if parsed.HasStart {
		start = Start{Position: parsed.Start, Rotation: parsed.Rotation}
	}

	return Definition{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Track:    Build(parsed.Outer, parsed.Inner),
		Start:    start,
		FilePath: path,
	}, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
