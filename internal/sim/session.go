// Package sim drives vehicles around a track: one Session per car, drivers
// that turn sensor readings into controls, and a concurrent population runner.
package sim

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// StepResult is the outcome of one simulation tick.
type StepResult struct {
	Tick      uint64
	Dead      bool
	Hits      [vehicle.RayCount]vehicle.RayHit
	Distances [vehicle.RayCount]float64
	Speed     float64
	Travelled float64 // total path length since the last reset
}

// Session owns one vehicle on a shared, read-only track.
type Session struct {
	track  *track.Track
	params vehicle.Params
	start  track.Start

	vehicle   *vehicle.Vehicle
	tick      uint64
	dead      bool
	travelled float64
	last      StepResult
}

// NewSession places a fresh vehicle at start.
func NewSession(t *track.Track, p vehicle.Params, start track.Start) *Session {
	s := &Session{
		track:  t,
		params: p,
		start:  start,
	}
	s.Reset()
	return s
}

// Reset puts the vehicle back on the start pose.
func (s *Session) Reset() {
	s.vehicle = vehicle.New(s.params, s.start.Position, s.start.Rotation)
	s.tick = 0
	s.dead = false
	s.travelled = 0

	walls := s.track.Walls()
	hits := s.vehicle.CastRays(walls)
	s.last = StepResult{
		Hits:      hits,
		Distances: s.vehicle.Distances(hits),
		Dead:      s.vehicle.CheckDeath(walls),
	}
	s.dead = s.last.Dead
}

// Step applies c and advances one tick: update, cast rays, check death.
// Once the vehicle is dead, Step returns the final result unchanged.
func (s *Session) Step(c vehicle.Controls) StepResult {
	if s.dead {
		return s.last
	}

	s.vehicle.SetControls(c)
	prev := s.vehicle.Position
	s.vehicle.Update()
	s.travelled += prev.Dist(s.vehicle.Position)
	s.tick++

	walls := s.track.Walls()
	hits := s.vehicle.CastRays(walls)
	s.dead = s.vehicle.CheckDeath(walls)

	s.last = StepResult{
		Tick:      s.tick,
		Dead:      s.dead,
		Hits:      hits,
		Distances: s.vehicle.Distances(hits),
		Speed:     s.vehicle.Speed,
		Travelled: s.travelled,
	}
	return s.last
}

// Observation returns what a driver sees before the next step.
func (s *Session) Observation() Observation {
	return Observation{
		Distances: s.last.Distances,
		Speed:     s.vehicle.Speed,
		Rotation:  s.vehicle.Rotation(),
	}
}

// Last returns the most recent step result.
func (s *Session) Last() StepResult { return s.last }

// Vehicle returns the simulated vehicle.
func (s *Session) Vehicle() *vehicle.Vehicle { return s.vehicle }

// Track returns the shared track.
func (s *Session) Track() *track.Track { return s.track }

// Tick returns the number of steps taken since the last reset.
func (s *Session) Tick() uint64 { return s.tick }

// Dead reports whether the vehicle has crashed.
func (s *Session) Dead() bool { return s.dead }

// Travelled returns the path length driven since the last reset.
func (s *Session) Travelled() float64 { return s.travelled }

// Position returns the vehicle's center.
func (s *Session) Position() core.Vec { return s.vehicle.Center() }
