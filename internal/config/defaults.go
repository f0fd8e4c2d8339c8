package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the built-in configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Vehicle: VehicleConfig{
			Width:            35,
			Height:           20,
			MaxAcceleration:  0.2,
			Friction:         0.05,
			MaxSpeed:         10,
			MaxBrakingPower:  0.5,
			MaxSteeringPower: 10,
		},
		Simulation: SimulationConfig{
			MaxTicks:   3600, // one minute at 60fps
			Population: 12,
			Workers:    4,
		},
		Autopilot: AutopilotConfig{
			Caution:   45,
			SteerGain: 0.25,
			Jitter:    0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
