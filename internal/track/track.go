// Package track holds the immutable wall set a vehicle races inside.
//
// A Track is built once from two ordered boundary loops and is read-only
// afterwards, so a single instance can be shared by any number of concurrent
// simulations without locking.
package track

import (
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Track is a closed circuit described by an outer and an inner boundary.
type Track struct {
	outer []core.Vec
	inner []core.Vec
	walls []core.Segment
}

// Build derives the wall list from the outer and inner boundary loops.
// Consecutive points of each loop are connected; no edge is added from the
// last point back to the first. A loop with fewer than 2 points contributes
// no walls.
func Build(outer, inner []core.Vec) *Track {
	t := &Track{
		outer: append([]core.Vec(nil), outer...),
		inner: append([]core.Vec(nil), inner...),
	}
	t.walls = make([]core.Segment, 0, segmentCount(outer)+segmentCount(inner))
	t.walls = appendSegments(t.walls, t.outer)
	t.walls = appendSegments(t.walls, t.inner)
	return t
}

// FromInts builds a track from integer boundary data, widened to float64.
func FromInts(outer, inner [][2]int) *Track {
	return Build(widen(outer), widen(inner))
}

// Walls returns the precomputed wall segments, outer loop first.
// The slice is shared; callers must not modify it.
func (t *Track) Walls() []core.Segment {
	return t.walls
}

// Outer returns the outer boundary loop.
func (t *Track) Outer() []core.Vec {
	return t.outer
}

// Inner returns the inner boundary loop.
func (t *Track) Inner() []core.Vec {
	return t.inner
}

// Bounds returns the axis-aligned extent of all boundary points.
// An empty track reports zero vectors.
func (t *Track) Bounds() (min, max core.Vec) {
	if len(t.outer) == 0 && len(t.inner) == 0 {
		return core.Vec{}, core.Vec{}
	}

	min = core.V(math.Inf(1), math.Inf(1))
	max = core.V(math.Inf(-1), math.Inf(-1))
	for _, loop := range [][]core.Vec{t.outer, t.inner} {
		for _, p := range loop {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max
}

func appendSegments(dst []core.Segment, loop []core.Vec) []core.Segment {
	for i := 0; i+1 < len(loop); i++ {
		dst = append(dst, core.Seg(loop[i], loop[i+1]))
	}
	return dst
}

func segmentCount(loop []core.Vec) int {
	if len(loop) < 2 {
		return 0
	}
	return len(loop) - 1
}

func widen(points [][2]int) []core.Vec {
	out := make([]core.Vec, len(points))
	for i, p := range points {
		out[i] = core.V(float64(p[0]), float64(p[1]))
	}
	return out
}
