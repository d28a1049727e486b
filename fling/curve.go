// Package fling models the residual inertial scroll produced by a touch
// fling gesture. A Curve is built once per gesture from the release velocity
// and the target surface's geometry, then queried once per animation tick
// for the cumulative scroll offset and instantaneous velocity.
//
// A Curve is a plain computational value: no I/O, no locking, no blocking.
// It is meant to be owned by exactly one driver; queries must be presented
// with non-decreasing timestamps for the no-backward-motion guarantee to
// hold. Out-of-order timestamps are a caller bug, not a defended state.
package fling

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pthm-cable/inertia/bezier"
	"github.com/pthm-cable/inertia/geom"
)

// ErrInvalidParameters reports construction inputs that cannot produce a
// well-defined curve (zero-area viewport, non-positive density, broken
// tuning table).
var ErrInvalidParameters = errors.New("fling: invalid parameters")

// Curve is the deceleration model for one fling gesture. Construction fixes
// the bezier control points, the curve duration and the per-axis travel
// bound; queries are pure functions of elapsed time apart from the
// held-offset cache.
type Curve struct {
	start    time.Time
	duration float64     // seconds; 0 for a zero-velocity fling
	distance geom.Vector // signed per-axis travel bound
	p1, p2   geom.Point
	easing   bezier.Cubic

	// lastOffset holds the most recently returned offset so a locally
	// non-monotonic stretch of the easing parametrization can never move
	// the reported position backward.
	lastOffset geom.Vector
}

// New builds a curve for a fling released at start with the given velocity
// (px/s, signed per axis), on a display with the given per-axis pixel
// density (px/inch) and viewport (px).
//
// A zero velocity yields a degenerate curve that is immediately inactive.
// Degenerate geometry fails with ErrInvalidParameters.
func New(velocity geom.Vector, start time.Time, pixelsPerInch geom.Vector, viewport geom.Size, tuning Tuning) (*Curve, error) {
	if viewport.IsEmpty() {
		return nil, fmt.Errorf("%w: viewport %gx%g", ErrInvalidParameters, viewport.W, viewport.H)
	}
	if pixelsPerInch.X <= 0 || pixelsPerInch.Y <= 0 {
		return nil, fmt.Errorf("%w: pixel density (%g, %g)", ErrInvalidParameters, pixelsPerInch.X, pixelsPerInch.Y)
	}
	if err := tuning.validate(); err != nil {
		return nil, err
	}

	c := &Curve{start: start}
	speed := velocity.MaxComponent()
	if speed == 0 {
		return c, nil
	}

	c.duration = tuning.Duration(speed)
	c.p1, c.p2 = tuning.ControlPointsFor(speed)
	c.easing = bezier.New(c.p1.X, c.p1.Y, c.p2.X, c.p2.Y)
	c.distance = geom.Vector{
		X: boundedDistance(velocity.X, c.duration, viewport.W, pixelsPerInch.X, tuning),
		Y: boundedDistance(velocity.Y, c.duration, viewport.H, pixelsPerInch.Y, tuning),
	}
	return c, nil
}

// boundedDistance computes the signed travel bound for one axis: the
// ramp-down stopping distance, capped at a density-scaled multiple of the
// viewport extent.
func boundedDistance(v, duration, extent, density float64, tn Tuning) float64 {
	stopping := math.Abs(v) * duration / 2
	limit := tn.BoundsMultiplier * extent * density / tn.DefaultPixelsPerInch
	return math.Copysign(math.Min(stopping, limit), v)
}

// ComputeOffsetAndVelocity samples the curve at the given time.
//
// offset is the cumulative scroll since start (signed, px), velocity the
// instantaneous rate (px/s). active turns false once the curve has run its
// full duration; from then on the result is exactly the travel bound with
// zero velocity, stable under repeated later queries. Times before start
// are treated as start.
func (c *Curve) ComputeOffsetAndVelocity(now time.Time) (offset, velocity geom.Vector, active bool) {
	elapsed := now.Sub(c.start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	if c.duration <= 0 || elapsed >= c.duration {
		c.lastOffset = c.distance
		return c.distance, geom.Vector{}, false
	}

	t := elapsed / c.duration
	raw := c.distance.Scale(c.easing.Solve(t))
	offset = geom.Vector{
		X: holdMonotonic(raw.X, c.lastOffset.X),
		Y: holdMonotonic(raw.Y, c.lastOffset.Y),
	}
	c.lastOffset = offset

	velocity = c.distance.Scale(c.easing.Slope(t) / c.duration)
	return offset, velocity, true
}

// holdMonotonic returns the previous offset whenever the raw sample would
// shrink the cumulative magnitude, holding the position until the raw curve
// overtakes it again.
func holdMonotonic(raw, prev float64) float64 {
	if math.Abs(raw) < math.Abs(prev) {
		return prev
	}
	return raw
}

// Duration returns the curve duration in seconds.
func (c *Curve) Duration() float64 {
	return c.duration
}

// TravelBound returns the signed per-axis travel bound the offset
// asymptotically approaches and finally lands on.
func (c *Curve) TravelBound() geom.Vector {
	return c.distance
}

// ControlPoints returns the bezier control points fixed at construction.
func (c *Curve) ControlPoints() (p1, p2 geom.Point) {
	return c.p1, c.p2
}
