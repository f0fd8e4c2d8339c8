package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// Observation is the sensor state handed to a driver each tick.
type Observation struct {
	Distances [vehicle.RayCount]float64
	Speed     float64
	Rotation  float64
}

// Driver turns observations into controls.
type Driver interface {
	Decide(obs Observation) vehicle.Controls
}

// DriverFunc adapts a plain function to the Driver interface.
type DriverFunc func(Observation) vehicle.Controls

// Decide calls f(obs).
func (f DriverFunc) Decide(obs Observation) vehicle.Controls { return f(obs) }

// KeyboardControls maps held actions to full-strength controls.
// With no steering key held the steering power drops to zero.
func KeyboardControls(in core.InputFrame, p vehicle.Params) vehicle.Controls {
	var c vehicle.Controls

	switch {
	case in.Has(core.ActionSteerLeft):
		c.Direction = vehicle.Left
		c.SteeringPower = p.MaxSteeringPower
	case in.Has(core.ActionSteerRight):
		c.Direction = vehicle.Right
		c.SteeringPower = p.MaxSteeringPower
	}

	switch {
	case in.Has(core.ActionAccelerate):
		c.Acceleration = p.MaxAcceleration
	case in.Has(core.ActionBrake):
		c.BrakingPower = p.MaxBrakingPower
	}
	return c
}

// ForwardRay returns the index of the sensor ray closest to the heading.
// Ray angles grow clockwise on screen while the heading grows
// counter-clockwise, so the heading maps to ray angle -rotation.
func ForwardRay(rotation float64) int {
	i := int(math.Round(-rotation/vehicle.RaySpacing)) % vehicle.RayCount
	if i < 0 {
		i += vehicle.RayCount
	}
	return i
}

// Autopilot steers toward the more open side of the sensor fan and brakes
// when the road ahead closes in.
type Autopilot struct {
	Limits  vehicle.Params
	Caution float64 // forward clearance that triggers braking
	Gain    float64 // degrees of steering per unit of side imbalance
}

// Decide implements Driver.
func (a Autopilot) Decide(obs Observation) vehicle.Controls {
	fwd := ForwardRay(obs.Rotation)
	ray := func(offset int) float64 {
		return obs.Distances[(fwd+offset+vehicle.RayCount)%vehicle.RayCount]
	}

	front := ray(0)
	left := (ray(-1) + ray(-2)) / 2
	right := (ray(1) + ray(2)) / 2

	var c vehicle.Controls
	diff := left - right
	if diff > 0 {
		c.Direction = vehicle.Left
	} else {
		c.Direction = vehicle.Right
	}
	c.SteeringPower = math.Min(math.Abs(diff)*a.Gain, a.Limits.MaxSteeringPower)

	if front < a.Caution && obs.Speed > a.Limits.MaxAcceleration {
		c.BrakingPower = a.Limits.MaxBrakingPower * (1 - front/a.Caution)
	} else {
		c.Acceleration = a.Limits.MaxAcceleration
	}
	return c
}

// String identifies the autopilot's tuning in run logs.
func (a Autopilot) String() string {
	return fmt.Sprintf("autopilot(caution=%.1f,gain=%.3f)", a.Caution, a.Gain)
}

// Jittered returns n autopilots whose caution and gain are spread by up to
// ±jitter (relative) around base. The first driver is always base itself.
func Jittered(base Autopilot, n int, jitter float64, seed int64) []Driver {
	rng := rand.New(rand.NewSource(seed))

	drivers := make([]Driver, 0, n)
	for i := range n {
		a := base
		if i > 0 {
			a.Caution *= 1 + jitter*(2*rng.Float64()-1)
			a.Gain *= 1 + jitter*(2*rng.Float64()-1)
		}
		drivers = append(drivers, a)
	}
	return drivers
}
