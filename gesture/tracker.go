// Package gesture derives fling release velocities from raw pointer samples.
// The curve itself never sees pointer events; this is the driver-side piece
// that turns a drag history into the velocity a fling starts from.
package gesture

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/inertia/geom"
)

const (
	// DefaultWindow is how much pointer history contributes to the
	// velocity estimate. Older samples describe the drag, not the release.
	DefaultWindow = 100 * time.Millisecond

	maxSamples = 20
)

// VelocityTracker estimates pointer velocity from a short history of
// timestamped positions. Positions are in pixels, velocities in px/s.
// Not safe for concurrent use; one tracker per pointer.
type VelocityTracker struct {
	window time.Duration
	times  []time.Time
	xs, ys []float64
}

// NewVelocityTracker creates a tracker with the default sample window.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{window: DefaultWindow}
}

// NewVelocityTrackerWindow creates a tracker with a custom sample window.
func NewVelocityTrackerWindow(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &VelocityTracker{window: window}
}

// AddSample records a pointer position. Samples older than the window
// relative to at are discarded.
func (vt *VelocityTracker) AddSample(pos geom.Vector, at time.Time) {
	vt.times = append(vt.times, at)
	vt.xs = append(vt.xs, pos.X)
	vt.ys = append(vt.ys, pos.Y)

	cutoff := at.Add(-vt.window)
	drop := 0
	for drop < len(vt.times) && vt.times[drop].Before(cutoff) {
		drop++
	}
	if over := len(vt.times) - maxSamples; over > drop {
		drop = over
	}
	if drop > 0 {
		vt.times = append(vt.times[:0], vt.times[drop:]...)
		vt.xs = append(vt.xs[:0], vt.xs[drop:]...)
		vt.ys = append(vt.ys[:0], vt.ys[drop:]...)
	}
}

// Reset discards all history. Call on gesture start.
func (vt *VelocityTracker) Reset() {
	vt.times = vt.times[:0]
	vt.xs = vt.xs[:0]
	vt.ys = vt.ys[:0]
}

// Velocity returns the least-squares velocity over the retained window, or
// zero when fewer than two distinct-time samples are available.
func (vt *VelocityTracker) Velocity() geom.Vector {
	if len(vt.times) < 2 {
		return geom.Vector{}
	}
	t0 := vt.times[0]
	ts := make([]float64, len(vt.times))
	for i, t := range vt.times {
		ts[i] = t.Sub(t0).Seconds()
	}
	if ts[len(ts)-1] == 0 {
		return geom.Vector{}
	}
	_, vx := stat.LinearRegression(ts, vt.xs, nil, false)
	_, vy := stat.LinearRegression(ts, vt.ys, nil, false)
	return geom.Vector{X: vx, Y: vy}
}
