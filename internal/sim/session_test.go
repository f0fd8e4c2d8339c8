package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/tracks/oval"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// barrier is a single horizontal wall along y = 0.
func barrier() *track.Track {
	return track.Build([]core.Vec{core.V(-100, 0), core.V(200, 0)}, nil)
}

var floorOrigin = track.Start{Position: core.V(0, 100), Rotation: 90}

func full(p vehicle.Params) vehicle.Controls {
	return vehicle.Controls{Acceleration: p.MaxAcceleration}
}

func TestSessionStep(t *testing.T) {
	def := oval.Definition()
	p := vehicle.DefaultParams()
	s := NewSession(def.Track, p, def.Start)
	require.False(t, s.Dead(), "ring start must be clear")

	res := s.Step(full(p))

	assert.Equal(t, uint64(1), res.Tick)
	assert.False(t, res.Dead)
	assert.InDelta(t, 0.15, res.Speed, 1e-12)
	assert.InDelta(t, 0.15, res.Travelled, 1e-12)
	assert.InDelta(t, def.Start.Position.Y-0.15, s.Vehicle().Position.Y, 1e-12)

	// The lane is 80 wide and the car sits in its middle.
	assert.True(t, res.Hits[0].OK)
	assert.InDelta(t, 40, res.Distances[0], 1e-9)
	assert.InDelta(t, 40, res.Distances[8], 1e-9)
	// Nothing within reach straight ahead.
	assert.False(t, res.Hits[12].OK)
	assert.Equal(t, vehicle.RayLength, res.Distances[12])
}

func TestSessionCrashFreezes(t *testing.T) {
	p := vehicle.DefaultParams()
	s := NewSession(barrier(), p, floorOrigin)

	var res StepResult
	for range 200 {
		res = s.Step(full(p))
		if res.Dead {
			break
		}
	}
	require.True(t, res.Dead, "driving straight at the barrier must crash")

	frozen := s.Vehicle().Position
	again := s.Step(full(p))
	assert.Equal(t, res, again)
	assert.Equal(t, frozen, s.Vehicle().Position)
	assert.Equal(t, res.Tick, s.Tick())
}

func TestSessionDeadOnSpawn(t *testing.T) {
	s := NewSession(barrier(), vehicle.DefaultParams(), track.Start{Position: core.V(40, -10)})

	assert.True(t, s.Dead())
	res := s.Step(full(vehicle.DefaultParams()))
	assert.True(t, res.Dead)
	assert.Zero(t, res.Tick)
}

func TestSessionReset(t *testing.T) {
	p := vehicle.DefaultParams()
	s := NewSession(barrier(), p, floorOrigin)
	for range 200 {
		s.Step(full(p))
	}
	require.True(t, s.Dead())

	s.Reset()
	assert.False(t, s.Dead())
	assert.Zero(t, s.Tick())
	assert.Zero(t, s.Travelled())
	assert.Equal(t, floorOrigin.Position, s.Vehicle().Position)
	assert.Equal(t, 90.0, s.Vehicle().Rotation())
}

func TestSessionObservation(t *testing.T) {
	p := vehicle.DefaultParams()
	s := NewSession(barrier(), p, floorOrigin)
	s.Step(full(p))

	obs := s.Observation()
	assert.Equal(t, s.Last().Distances, obs.Distances)
	assert.Equal(t, s.Vehicle().Speed, obs.Speed)
	assert.Equal(t, 90.0, obs.Rotation)
}
