package main

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/track"
)

var errNoTrack = errors.New("no track given: pass a track ID or --track-file")

// resolveTrack finds the track to drive. --track-file wins over an ID;
// IDs are looked up in the registry first, then in --track-dir.
func resolveTrack(args []string) (track.Definition, error) {
	if flagTrackFile != "" {
		return track.LoadFile(flagTrackFile)
	}
	if len(args) == 0 {
		return track.Definition{}, errNoTrack
	}

	id := args[0]
	if registry.Exists(id) {
		return registry.Create(id)
	}
	if flagTrackDir != "" {
		def, err := track.NewLoader(flagTrackDir).LoadByID(id)
		if err == nil {
			return def, nil
		}
	}
	return track.Definition{}, fmt.Errorf("unknown track %q (run 'racer list' to see available tracks)", id)
}

// loadConfig loads racer.yaml honoring --config.
func loadConfig() (config.RacerConfig, error) {
	cfg, err := config.LoadRacer(flagConfig)
	if err != nil {
		return config.RacerConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
