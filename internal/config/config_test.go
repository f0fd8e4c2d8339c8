package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "racer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultRacerConfig(), cfg)
}

func TestDefaultParamsMatchEngine(t *testing.T) {
	assert.Equal(t, vehicle.DefaultParams(), DefaultRacerConfig().Vehicle.Params())
}

func TestLoadRacerCustomPath(t *testing.T) {
	path := writeConfig(t, `
vehicle:
  max_speed: 6
simulation:
  population: 3
`)

	cfg, err := LoadRacer(path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, cfg.Vehicle.MaxSpeed)
	assert.Equal(t, 3, cfg.Simulation.Population)
	// Untouched keys keep their defaults
	assert.Equal(t, 35.0, cfg.Vehicle.Width)
	assert.Equal(t, DefaultRacerConfig().Autopilot, cfg.Autopilot)
}

func TestLoadRacerErrors(t *testing.T) {
	_, err := LoadRacer(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadRacer(writeConfig(t, "vehicle: [not, a, map]"))
	assert.Error(t, err)

	_, err = LoadRacer(writeConfig(t, "vehicle:\n  width: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRacerFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRacer("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRacerConfig(), cfg)
}

func TestLoadRacerLocalConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "racer.yaml"), []byte("simulation:\n  workers: 2\n"), 0o600))

	cfg, err := LoadRacer("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Simulation.Workers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RacerConfig)
		ok     bool
	}{
		{"defaults", func(*RacerConfig) {}, true},
		{"zero height", func(c *RacerConfig) { c.Vehicle.Height = 0 }, false},
		{"zero max speed", func(c *RacerConfig) { c.Vehicle.MaxSpeed = 0 }, false},
		{"negative friction", func(c *RacerConfig) { c.Vehicle.Friction = -0.1 }, false},
		{"zero friction", func(c *RacerConfig) { c.Vehicle.Friction = 0 }, true},
		{"no ticks", func(c *RacerConfig) { c.Simulation.MaxTicks = 0 }, false},
		{"empty population", func(c *RacerConfig) { c.Simulation.Population = 0 }, false},
		{"no workers", func(c *RacerConfig) { c.Simulation.Workers = 0 }, false},
		{"jitter too large", func(c *RacerConfig) { c.Autopilot.Jitter = 1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
