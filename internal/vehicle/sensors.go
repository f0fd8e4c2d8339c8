package vehicle

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Sensor fan layout.
const (
	RayCount   = 16
	RaySpacing = 22.5  // degrees between neighboring rays
	RayLength  = 100.0 // world units
)

// RayHit is the nearest wall point along one sensor ray, if any.
type RayHit struct {
	Point core.Vec
	OK    bool
}

// RayAngle returns the world-frame angle of ray i in degrees.
// Angle 0 points along +x; angles grow clockwise on a y-down screen.
func RayAngle(i int) float64 {
	return float64(i) * RaySpacing
}

// CastRays casts the sensor fan from the vehicle's center and returns, per
// ray, the closest intersection with any wall. Rays are fixed in the world
// frame and do not turn with the vehicle.
func (v *Vehicle) CastRays(walls []core.Segment) [RayCount]RayHit {
	var hits [RayCount]RayHit
	origin := v.Center()

	for i := range hits {
		end := origin.Add(core.V(RayLength, 0).Rotate(RayAngle(i)))
		best := math.Inf(1)

		for _, w := range walls {
			p, ok := core.Intersect(w.A, w.B, origin, end)
			if !ok {
				continue
			}
			if d := origin.DistSq(p); d < best {
				best = d
				hits[i] = RayHit{Point: p, OK: true}
			}
		}
	}
	return hits
}

// Distances converts ray hits into sensor readings measured from the
// vehicle's center. Rays without a hit read RayLength.
func (v *Vehicle) Distances(hits [RayCount]RayHit) [RayCount]float64 {
	var out [RayCount]float64
	origin := v.Center()
	for i, h := range hits {
		if h.OK {
			out[i] = origin.Dist(h.Point)
		} else {
			out[i] = RayLength
		}
	}
	return out
}

// Corners returns the rotated footprint in world space, ordered
// top-left, top-right, bottom-right, bottom-left before rotation.
func (v *Vehicle) Corners() [4]core.Vec {
	hw, hh := v.Params.Width/2, v.Params.Height/2
	rel := [4]core.Vec{
		core.V(-hw, -hh),
		core.V(hw, -hh),
		core.V(hw, hh),
		core.V(-hw, hh),
	}

	center := v.Center()
	var out [4]core.Vec
	for i, c := range rel {
		// Negated to match the y-down heading used by Update.
		out[i] = c.Rotate(-v.rotation).Add(center)
	}
	return out
}

// CheckDeath reports whether any edge of the rotated footprint touches a wall.
func (v *Vehicle) CheckDeath(walls []core.Segment) bool {
	corners := v.Corners()

	for _, w := range walls {
		for i := range corners {
			p1 := corners[i]
			p2 := corners[(i+1)%len(corners)]
			if _, ok := core.Intersect(w.A, w.B, p1, p2); ok {
				return true
			}
		}
	}
	return false
}
