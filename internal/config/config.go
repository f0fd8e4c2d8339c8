// Package config provides YAML-based configuration loading for the racer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// RacerConfig contains all tunable parameters.
type RacerConfig struct {
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Simulation SimulationConfig `yaml:"simulation"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
}

// VehicleConfig defines the car's footprint and handling limits.
type VehicleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MaxAcceleration  float64 `yaml:"max_acceleration"`
	Friction         float64 `yaml:"friction"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MaxBrakingPower  float64 `yaml:"max_braking_power"`
	MaxSteeringPower float64 `yaml:"max_steering_power"` // degrees per tick
}

// SimulationConfig defines headless population runs.
type SimulationConfig struct {
	MaxTicks   int `yaml:"max_ticks"`  // Ticks after which a surviving run is stopped
	Population int `yaml:"population"` // Number of autopilot drivers per run
	Workers    int `yaml:"workers"`    // Concurrent sessions
}

// AutopilotConfig tunes the heuristic driver.
type AutopilotConfig struct {
	Caution   float64 `yaml:"caution"`    // Forward clearance below which the autopilot brakes
	SteerGain float64 `yaml:"steer_gain"` // Degrees of steering per unit of clearance imbalance
	Jitter    float64 `yaml:"jitter"`     // Relative spread applied per population member
}

// Params converts the vehicle section to engine parameters.
func (v VehicleConfig) Params() vehicle.Params {
	return vehicle.Params{
		Width:            v.Width,
		Height:           v.Height,
		MaxAcceleration:  v.MaxAcceleration,
		Friction:         v.Friction,
		MaxSpeed:         v.MaxSpeed,
		MaxBrakingPower:  v.MaxBrakingPower,
		MaxSteeringPower: v.MaxSteeringPower,
	}
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a drivable setup.
func (c RacerConfig) Validate() error {
	v := c.Vehicle
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w: vehicle size must be positive, got %vx%v", ErrInvalidConfig, v.Width, v.Height)
	case v.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %v", ErrInvalidConfig, v.MaxSpeed)
	case v.MaxAcceleration < 0 || v.Friction < 0 || v.MaxBrakingPower < 0 || v.MaxSteeringPower < 0:
		return fmt.Errorf("%w: vehicle limits must not be negative", ErrInvalidConfig)
	}

	s := c.Simulation
	switch {
	case s.MaxTicks <= 0:
		return fmt.Errorf("%w: max_ticks must be positive, got %d", ErrInvalidConfig, s.MaxTicks)
	case s.Population <= 0:
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalidConfig, s.Population)
	case s.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, s.Workers)
	}

	if c.Autopilot.Caution < 0 || c.Autopilot.Jitter < 0 || c.Autopilot.Jitter >= 1 {
		return fmt.Errorf("%w: autopilot caution must be >= 0 and jitter in [0, 1)", ErrInvalidConfig)
	}
	return nil
}
