package canonical

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

func TestCanonicalWallCount(t *testing.T) {
	def := Definition()

	expected := (len(outer) - 1) + (len(inner) - 1)
	if got := len(def.Track.Walls()); got != expected {
		t.Errorf("len(Walls()) = %d, expected %d", got, expected)
	}
	if outer[0] != outer[len(outer)-1] || inner[0] != inner[len(inner)-1] {
		t.Error("boundary loops should repeat their first point at the end")
	}
}

func TestCanonicalRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("track %q should register itself", ID)
	}
	def, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if def.ID != ID {
		t.Errorf("Create().ID = %q, expected %q", def.ID, ID)
	}
}

func TestStartPoseIsClear(t *testing.T) {
	def := Definition()
	walls := def.Track.Walls()
	v := vehicle.New(vehicle.DefaultParams(), def.Start.Position, def.Start.Rotation)

	if v.CheckDeath(walls) {
		t.Fatal("vehicle should not collide at the starting pose")
	}

	hits := v.CastRays(walls)
	dist := v.Distances(hits)

	// Left: the outer wall of the first curve. Down: the final straight.
	if !hits[8].OK || dist[8] < 20 || dist[8] > 25 {
		t.Errorf("west sensor = %v (hit %v), expected ~21.9", dist[8], hits[8].OK)
	}
	if !hits[4].OK || math.Abs(dist[4]-40) > 1e-6 {
		t.Errorf("south sensor = %v (hit %v), expected 40", dist[4], hits[4].OK)
	}
}

func TestShortStraightRunSurvives(t *testing.T) {
	def := Definition()
	walls := def.Track.Walls()
	p := vehicle.DefaultParams()
	v := vehicle.New(p, def.Start.Position, def.Start.Rotation)
	v.SetControls(vehicle.Controls{Acceleration: p.MaxAcceleration})

	for i := 0; i < 10; i++ {
		v.Update()
		if v.CheckDeath(walls) {
			t.Fatalf("crashed on tick %d of the opening straight", i)
		}
	}
	if v.Position.Y >= def.Start.Position.Y {
		t.Error("heading 90 should move the vehicle up the screen")
	}
}
