// Package geom provides small 2D value types shared across the fling packages.
package geom

import "math"

// Vector is a 2D vector with float64 components.
// Used for velocities (px/s), scroll offsets (px) and pixel densities (px/inch).
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// MaxComponent returns the larger of the two absolute components.
func (v Vector) MaxComponent() float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// Size is a 2D extent (width, height) in pixels.
type Size struct {
	W, H float64
}

// IsEmpty reports whether the size has no positive area.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Point is a 2D point, used for bezier control points.
type Point struct {
	X, Y float64
}

// Lerp linearly interpolates between a and b by fraction f.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// LerpPoint linearly interpolates between points a and b by fraction f.
func LerpPoint(a, b Point, f float64) Point {
	return Point{X: Lerp(a.X, b.X, f), Y: Lerp(a.Y, b.Y, f)}
}
