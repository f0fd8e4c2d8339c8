// Package vehicle implements the arcade-style car: per-tick kinematics,
// a 16-ray distance sensor fan and rotated-footprint collision against walls.
package vehicle

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// SteeringDirection is the side the vehicle turns towards.
type SteeringDirection int

const (
	Right SteeringDirection = iota
	Left
)

// String returns "Left" or "Right".
func (d SteeringDirection) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Params are the fixed physical characteristics of a vehicle.
type Params struct {
	Width            float64
	Height           float64
	MaxAcceleration  float64
	Friction         float64 // deceleration applied every tick while moving
	MaxSpeed         float64
	MaxBrakingPower  float64
	MaxSteeringPower float64 // degrees per tick
}

// DefaultParams returns the standard 35x20 car.
func DefaultParams() Params {
	return Params{
		Width:            35,
		Height:           20,
		MaxAcceleration:  0.2,
		Friction:         0.05,
		MaxSpeed:         10,
		MaxBrakingPower:  0.5,
		MaxSteeringPower: 10,
	}
}

// Controls is the input surface an external driver writes between ticks.
type Controls struct {
	Acceleration  float64
	BrakingPower  float64
	SteeringPower float64
	Direction     SteeringDirection
}

// Vehicle holds the kinematic state of one car.
type Vehicle struct {
	Params Params

	// Position is the top-left corner of the unrotated bounding box.
	Position core.Vec
	Speed    float64

	rotation float64
	controls Controls
}

// New creates a stationary vehicle at pos facing rotation degrees.
func New(p Params, pos core.Vec, rotation float64) *Vehicle {
	v := &Vehicle{
		Params:   p,
		Position: pos,
	}
	v.SetRotation(rotation)
	return v
}

// NormalizeRotation maps deg into (-180, 180].
func NormalizeRotation(deg float64) float64 {
	r := math.Mod(deg+180, 360)
	if r <= 0 {
		r += 360
	}
	return r - 180
}

// Rotation returns the heading in degrees, in (-180, 180].
// Positive values turn left (counter-clockwise on screen).
func (v *Vehicle) Rotation() float64 {
	return v.rotation
}

// SetRotation sets the heading, normalizing it.
func (v *Vehicle) SetRotation(deg float64) {
	v.rotation = NormalizeRotation(deg)
}

// Controls returns the control input used by the next Update.
func (v *Vehicle) Controls() Controls {
	return v.controls
}

// SetControls stores driver input, clamping each magnitude to [0, max].
func (v *Vehicle) SetControls(c Controls) {
	v.controls = Controls{
		Acceleration:  core.ClampF(c.Acceleration, 0, v.Params.MaxAcceleration),
		BrakingPower:  core.ClampF(c.BrakingPower, 0, v.Params.MaxBrakingPower),
		SteeringPower: core.ClampF(c.SteeringPower, 0, v.Params.MaxSteeringPower),
		Direction:     c.Direction,
	}
}

// Size returns the footprint width and height.
func (v *Vehicle) Size() (w, h float64) {
	return v.Params.Width, v.Params.Height
}

// Center returns the geometric center in world space.
func (v *Vehicle) Center() core.Vec {
	return v.Position.Add(core.V(v.Params.Width/2, v.Params.Height/2))
}

// Update advances the vehicle by one fixed tick.
func (v *Vehicle) Update() {
	c := v.controls

	switch c.Direction {
	case Left:
		v.SetRotation(v.rotation + c.SteeringPower)
	case Right:
		v.SetRotation(v.rotation - c.SteeringPower)
	}

	v.Speed += c.Acceleration

	if v.Speed > 0 {
		v.Speed -= v.Params.Friction
		if v.Speed < 0 {
			v.Speed = 0
		}
	} else {
		// Reverse motion is not modeled
		v.Speed = 0
	}

	if v.Speed > v.Params.MaxSpeed {
		v.Speed = v.Params.MaxSpeed
	}

	if c.BrakingPower > 0 {
		v.Speed -= c.BrakingPower
		if v.Speed < 0 {
			v.Speed = 0
		}
	}

	// Screen space: y grows downward, so a positive heading moves up.
	sin, cos := math.Sincos(v.rotation * math.Pi / 180)
	v.Position = core.V(v.Position.X+v.Speed*cos, v.Position.Y-v.Speed*sin)
}
