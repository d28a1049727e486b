// Package driver runs fling curves against scrollable targets, translating
// cumulative curve offsets into incremental scroll deltas once per
// animation tick. It implements the consumer side of the curve contract:
// construct on gesture release, tick with the frame clock, stop on
// completion, cancellation or a target that stops consuming.
package driver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/inertia/fling"
	"github.com/pthm-cable/inertia/geom"
	"github.com/pthm-cable/inertia/telemetry"
)

// DefaultStallTicks is how many consecutive delivering ticks may go fully
// unconsumed before the fling is abandoned.
const DefaultStallTicks = 2

// ScrollTarget is a surface that consumes scroll deltas.
type ScrollTarget interface {
	// ScrollBy applies a scroll delta in pixels and returns the unconsumed
	// remainder (zero when fully consumed).
	ScrollBy(delta geom.Vector) geom.Vector
	// Viewport is the visible extent of the surface in pixels.
	Viewport() geom.Size
	// PixelsPerInch is the per-axis pixel density of the display.
	PixelsPerInch() geom.Vector
}

// Options configures a fling beyond its velocity and target.
type Options struct {
	// Parent receives scroll the target could not consume. Nil disables
	// bubbling.
	Parent ScrollTarget
	// Tuning overrides the curve constants; the zero value means
	// fling.DefaultTuning.
	Tuning fling.Tuning
	// Recorder, when set, receives one sample per tick.
	Recorder *telemetry.Recorder
	// StallTicks overrides DefaultStallTicks when positive.
	StallTicks int
}

// Fling drives one curve against one target for the lifetime of a gesture's
// inertial phase. Single owner, no locking; tick from one goroutine.
type Fling struct {
	curve      *fling.Curve
	target     ScrollTarget
	parent     ScrollTarget
	recorder   *telemetry.Recorder
	stallLimit int

	prev    geom.Vector
	stalled int
	done    bool
}

// Start builds a curve from the release velocity and the target's geometry
// and returns a driver for it.
func Start(velocity geom.Vector, at time.Time, target ScrollTarget, opts Options) (*Fling, error) {
	tuning := opts.Tuning
	if len(tuning.ControlPoints) == 0 {
		tuning = fling.DefaultTuning()
	}
	curve, err := fling.New(velocity, at, target.PixelsPerInch(), target.Viewport(), tuning)
	if err != nil {
		return nil, fmt.Errorf("starting fling: %w", err)
	}

	stallLimit := opts.StallTicks
	if stallLimit <= 0 {
		stallLimit = DefaultStallTicks
	}

	slog.Debug("fling started",
		"velocity_x", velocity.X,
		"velocity_y", velocity.Y,
		"duration", curve.Duration(),
		"bound_x", curve.TravelBound().X,
		"bound_y", curve.TravelBound().Y,
	)

	return &Fling{
		curve:      curve,
		target:     target,
		parent:     opts.Parent,
		recorder:   opts.Recorder,
		stallLimit: stallLimit,
	}, nil
}

// Tick queries the curve at now and delivers the incremental delta to the
// target, bubbling any remainder to the parent. Returns false once the
// fling is finished and should no longer be ticked.
func (f *Fling) Tick(now time.Time) bool {
	if f.done {
		return false
	}

	offset, velocity, active := f.curve.ComputeOffsetAndVelocity(now)
	delta := offset.Sub(f.prev)
	f.prev = offset

	if !delta.IsZero() {
		remainder := f.target.ScrollBy(delta)
		if f.parent != nil && !remainder.IsZero() {
			remainder = f.parent.ScrollBy(remainder)
		}
		if delta.Sub(remainder).IsZero() {
			f.stalled++
		} else {
			f.stalled = 0
		}
	}

	if f.recorder != nil {
		f.recorder.Record(now, offset, delta, velocity, active)
	}

	if !active || f.stalled >= f.stallLimit {
		f.done = true
	}
	return !f.done
}

// Cancel stops the fling immediately. The curve has no cancellation of its
// own; stopping early is purely the driver ceasing to query it.
func (f *Fling) Cancel() {
	if !f.done {
		f.done = true
		slog.Debug("fling cancelled")
	}
}

// Done reports whether the fling has finished or been cancelled.
func (f *Fling) Done() bool {
	return f.done
}

// Curve exposes the underlying curve, mainly for inspection and tests.
func (f *Fling) Curve() *fling.Curve {
	return f.curve
}
