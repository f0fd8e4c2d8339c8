// Package core provides fundamental types and utilities for the racer.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec is a 2D point or vector in world space.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Rotate turns the vector counter-clockwise (math convention) by deg degrees.
// On a y-down screen this appears clockwise.
func (v Vec) Rotate(deg float64) Vec {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// DistSq returns the squared distance between v and o.
func (v Vec) DistSq(o Vec) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Segment is an undirected line between two points, used as a wall edge.
type Segment struct {
	A, B Vec
}

// Seg creates a segment from a to b.
func Seg(a, b Vec) Segment {
	return Segment{A: a, B: b}
}

// Intersect returns the intersection of s with o, if any.
func (s Segment) Intersect(o Segment) (Vec, bool) {
	return Intersect(s.A, s.B, o.A, o.B)
}

// Intersect computes where segment a1-a2 crosses segment b1-b2.
// Parallel and collinear segments never intersect, even when they overlap.
// The returned point lies on a1-a2.
func Intersect(a1, a2, b1, b2 Vec) (Vec, bool) {
	denom := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)
	if denom == 0 {
		return Vec{}, false
	}

	u := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / denom
	v := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / denom

	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Vec{}, false
	}

	return Vec{
		X: a1.X + u*(a2.X-a1.X),
		Y: a1.Y + u*(a2.Y-a1.Y),
	}, true
}

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
