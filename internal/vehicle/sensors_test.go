package vehicle

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// box returns the four walls of an axis-aligned rectangle.
func box(x0, y0, x1, y1 float64) []core.Segment {
	return []core.Segment{
		core.Seg(core.V(x0, y0), core.V(x1, y0)),
		core.Seg(core.V(x1, y0), core.V(x1, y1)),
		core.Seg(core.V(x1, y1), core.V(x0, y1)),
		core.Seg(core.V(x0, y1), core.V(x0, y0)),
	}
}

// centeredAt places a default vehicle so its center is at c.
func centeredAt(c core.Vec, rotation float64) *Vehicle {
	p := DefaultParams()
	return New(p, c.Sub(core.V(p.Width/2, p.Height/2)), rotation)
}

func TestCastRaysEmptyWalls(t *testing.T) {
	v := centeredAt(core.V(50, 50), 0)

	hits := v.CastRays(nil)
	if len(hits) != RayCount {
		t.Fatalf("CastRays() returned %d rays, expected %d", len(hits), RayCount)
	}
	for i, h := range hits {
		if h.OK {
			t.Errorf("ray %d reported a hit at %v with no walls", i, h.Point)
		}
	}

	for i, d := range v.Distances(hits) {
		if d != RayLength {
			t.Errorf("Distances()[%d] = %v, expected %v", i, d, RayLength)
		}
	}
}

func TestCastRaysInsideBox(t *testing.T) {
	center := core.V(50, 60)
	v := centeredAt(center, 0)
	hits := v.CastRays(box(0, 0, 100, 120))

	cardinal := map[int]core.Vec{
		0:  core.V(100, 60), // +x
		4:  core.V(50, 120), // +y (down the screen)
		8:  core.V(0, 60),
		12: core.V(50, 0),
	}
	for i, want := range cardinal {
		if !hits[i].OK || !near(hits[i].Point, want) {
			t.Errorf("ray %d = %+v, expected hit at %v", i, hits[i], want)
		}
	}

	for i, h := range hits {
		if !h.OK {
			t.Errorf("ray %d missed, every ray should reach the box", i)
			continue
		}
		if d := center.Dist(h.Point); d > RayLength+eps {
			t.Errorf("ray %d hit at distance %v beyond ray length", i, d)
		}
		onEdge := math.Abs(h.Point.X) < eps || math.Abs(h.Point.X-100) < eps ||
			math.Abs(h.Point.Y) < eps || math.Abs(h.Point.Y-120) < eps
		if !onEdge {
			t.Errorf("ray %d hit %v is not on the box boundary", i, h.Point)
		}
	}

	dist := v.Distances(hits)
	if math.Abs(dist[0]-50) > eps || math.Abs(dist[4]-60) > eps {
		t.Errorf("Distances() = %v, expected 50 east and 60 south", dist)
	}
}

func TestCastRaysNearestHit(t *testing.T) {
	v := centeredAt(core.V(0, 0), 0)
	farWall := core.Seg(core.V(90, -50), core.V(90, 50))
	nearWall := core.Seg(core.V(70, -50), core.V(70, 50))

	// Wall order must not matter
	for _, walls := range [][]core.Segment{{farWall, nearWall}, {nearWall, farWall}} {
		hits := v.CastRays(walls)
		if !hits[0].OK || !near(hits[0].Point, core.V(70, 0)) {
			t.Errorf("ray 0 = %+v, expected nearest hit at (70, 0)", hits[0])
		}
		if hits[8].OK {
			t.Errorf("ray 8 points away from the walls, got %+v", hits[8])
		}
	}
}

func TestCastRaysOutOfRange(t *testing.T) {
	v := centeredAt(core.V(0, 0), 0)
	hits := v.CastRays([]core.Segment{core.Seg(core.V(150, -50), core.V(150, 50))})

	for i, h := range hits {
		if h.OK {
			t.Errorf("ray %d hit a wall beyond its length at %v", i, h.Point)
		}
	}
}

func TestCastRaysIgnoresHeading(t *testing.T) {
	walls := box(0, 0, 100, 120)
	a := centeredAt(core.V(50, 60), 0).CastRays(walls)
	b := centeredAt(core.V(50, 60), 135).CastRays(walls)

	if a != b {
		t.Error("sensor fan is world-fixed and should not depend on rotation")
	}
}

func TestCastRaysDoesNotMutate(t *testing.T) {
	v := centeredAt(core.V(50, 60), 30)
	v.Speed = 4
	before := *v

	v.CastRays(box(0, 0, 100, 120))
	v.CheckDeath(box(0, 0, 100, 120))

	if *v != before {
		t.Error("queries should not mutate vehicle state")
	}
}

func TestRayAngle(t *testing.T) {
	for i := 0; i < RayCount; i++ {
		if got := RayAngle(i); got != float64(i)*22.5 {
			t.Errorf("RayAngle(%d) = %v, expected %v", i, got, float64(i)*22.5)
		}
	}
}

func TestCorners(t *testing.T) {
	v := New(DefaultParams(), core.V(0, 0), 0)
	expected := [4]core.Vec{core.V(0, 0), core.V(35, 0), core.V(35, 20), core.V(0, 20)}
	got := v.Corners()
	for i := range expected {
		if !near(got[i], expected[i]) {
			t.Errorf("Corners()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	// A quarter turn stands the footprint upright around the same center
	v.SetRotation(90)
	expected = [4]core.Vec{core.V(7.5, 27.5), core.V(7.5, -7.5), core.V(27.5, -7.5), core.V(27.5, 27.5)}
	got = v.Corners()
	for i := range expected {
		if !near(got[i], expected[i]) {
			t.Errorf("rotated Corners()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestCheckDeath(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		walls    []core.Segment
		expected bool
	}{
		{"no walls", 0, nil, false},
		{"inside enclosing square", 0, box(-10, -10, 45, 30), false},
		{"square cuts through footprint", 0, box(-10, -10, 30, 30), true},
		{"fits unrotated", 0, box(-1, -5, 36, 25), false},
		{"rotated footprint pokes out", 90, box(-1, -5, 36, 25), true},
		{"wall far away", 0, []core.Segment{core.Seg(core.V(100, 100), core.V(200, 100))}, false},
		{"wall crossing one edge", 0, []core.Segment{core.Seg(core.V(10, -5), core.V(10, 5))}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New(DefaultParams(), core.V(0, 0), tc.rotation)
			if got := v.CheckDeath(tc.walls); got != tc.expected {
				t.Errorf("CheckDeath() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
