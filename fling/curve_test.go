package fling

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/inertia/geom"
)

var (
	testStart    = time.Unix(1000, 0)
	testDensity  = geom.Vector{X: 96, Y: 96}
	testViewport = geom.Size{W: 1200, H: 1200}
)

func mustCurve(t *testing.T, velocity geom.Vector) *Curve {
	t.Helper()
	c, err := New(velocity, testStart, testDensity, testViewport, DefaultTuning())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func at(sec float64) time.Time {
	return testStart.Add(time.Duration(sec * float64(time.Second)))
}

func TestInvalidParameters(t *testing.T) {
	velocity := geom.Vector{Y: -2000}

	tests := []struct {
		name     string
		density  geom.Vector
		viewport geom.Size
		tuning   Tuning
	}{
		{"zero viewport", testDensity, geom.Size{}, DefaultTuning()},
		{"zero width", testDensity, geom.Size{W: 0, H: 400}, DefaultTuning()},
		{"negative height", testDensity, geom.Size{W: 400, H: -1}, DefaultTuning()},
		{"zero density", geom.Vector{}, testViewport, DefaultTuning()},
		{"negative density", geom.Vector{X: 96, Y: -96}, testViewport, DefaultTuning()},
		{"empty control table", testDensity, testViewport, Tuning{
			DefaultPixelsPerInch: 96, BoundsMultiplier: 3, MaxDuration: 3.5, HalfSaturationVelocity: 2500,
		}},
		{"control point y above 1", testDensity, testViewport, Tuning{
			DefaultPixelsPerInch: 96, BoundsMultiplier: 3, MaxDuration: 3.5, HalfSaturationVelocity: 2500,
			ControlPoints: []ControlPointRow{
				{Velocity: 2000, P1: geom.Point{X: 0.2, Y: 1.8}, P2: geom.Point{X: 0.55, Y: 1.0}},
			},
		}},
		{"negative control point y", testDensity, testViewport, Tuning{
			DefaultPixelsPerInch: 96, BoundsMultiplier: 3, MaxDuration: 3.5, HalfSaturationVelocity: 2500,
			ControlPoints: []ControlPointRow{
				{Velocity: 2000, P1: geom.Point{X: 0.2, Y: -0.3}, P2: geom.Point{X: 0.55, Y: 1.0}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(velocity, testStart, tt.density, tt.viewport, tt.tuning)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("New = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	a := mustCurve(t, geom.Vector{X: 800, Y: -2400})
	b := mustCurve(t, geom.Vector{X: 800, Y: -2400})

	for i := 0; i <= 100; i++ {
		now := at(float64(i) * 0.03)
		offA, velA, actA := a.ComputeOffsetAndVelocity(now)
		offB, velB, actB := b.ComputeOffsetAndVelocity(now)
		if offA != offB || velA != velB || actA != actB {
			t.Fatalf("curves diverged at %v: (%v %v %v) vs (%v %v %v)",
				now, offA, velA, actA, offB, velB, actB)
		}
	}
}

func TestMonotonicDisplacement(t *testing.T) {
	c := mustCurve(t, geom.Vector{X: -1500, Y: 4000})
	duration := c.Duration()

	// Non-uniform, quadratically spaced timestamps past the end of the
	// curve.
	const steps = 400
	prev := geom.Vector{}
	for i := 0; i <= steps; i++ {
		frac := float64(i) / steps
		now := at(1.2 * duration * frac * frac)
		offset, _, _ := c.ComputeOffsetAndVelocity(now)

		if math.Abs(offset.X) < math.Abs(prev.X) || math.Abs(offset.Y) < math.Abs(prev.Y) {
			t.Fatalf("offset magnitude regressed at step %d: %v after %v", i, offset, prev)
		}
		if offset.X > 0 || offset.Y < 0 {
			t.Fatalf("offset sign diverged from velocity at step %d: %v", i, offset)
		}
		prev = offset
	}
}

func TestBoundedTravel(t *testing.T) {
	c := mustCurve(t, geom.Vector{X: 9000, Y: -500})
	bound := c.TravelBound()

	for i := 0; i <= 300; i++ {
		now := at(float64(i) * 0.02)
		offset, _, _ := c.ComputeOffsetAndVelocity(now)
		if math.Abs(offset.X) > math.Abs(bound.X)+1e-9 {
			t.Fatalf("x offset %v exceeds bound %v", offset.X, bound.X)
		}
		if math.Abs(offset.Y) > math.Abs(bound.Y)+1e-9 {
			t.Fatalf("y offset %v exceeds bound %v", offset.Y, bound.Y)
		}
	}
}

func TestNaturalTermination(t *testing.T) {
	c := mustCurve(t, geom.Vector{Y: -3000})
	bound := c.TravelBound()
	end := at(c.Duration())

	offset, velocity, active := c.ComputeOffsetAndVelocity(end)
	if active {
		t.Error("curve still active at start+duration")
	}
	if offset != bound {
		t.Errorf("terminal offset = %v, want bound %v", offset, bound)
	}
	if !velocity.IsZero() {
		t.Errorf("terminal velocity = %v, want zero", velocity)
	}

	// Terminal state is stable under repeated later queries
	for i := 1; i <= 5; i++ {
		later := end.Add(time.Duration(i) * time.Second)
		offset2, velocity2, active2 := c.ComputeOffsetAndVelocity(later)
		if offset2 != bound || !velocity2.IsZero() || active2 {
			t.Fatalf("terminal state not idempotent at +%ds: %v %v %v", i, offset2, velocity2, active2)
		}
	}
}

func TestZeroVelocityDegenerate(t *testing.T) {
	c := mustCurve(t, geom.Vector{})

	offset, velocity, active := c.ComputeOffsetAndVelocity(testStart)
	if active {
		t.Error("zero-velocity curve must be immediately inactive")
	}
	if !offset.IsZero() || !velocity.IsZero() {
		t.Errorf("zero-velocity curve returned %v %v, want zeros", offset, velocity)
	}
	if c.Duration() != 0 {
		t.Errorf("zero-velocity duration = %v, want 0", c.Duration())
	}
}

func TestQueryBeforeStart(t *testing.T) {
	c := mustCurve(t, geom.Vector{Y: -2000})

	offset, _, active := c.ComputeOffsetAndVelocity(testStart.Add(-time.Second))
	if !offset.IsZero() {
		t.Errorf("offset before start = %v, want zero", offset)
	}
	if !active {
		t.Error("curve should be active at clamped start time")
	}
}

func TestVerticalFlingScenario(t *testing.T) {
	// velocity (0, -2000) px/s, density (1,1), viewport 400x400
	c, err := New(geom.Vector{Y: -2000}, testStart, geom.Vector{X: 1, Y: 1},
		geom.Size{W: 400, H: 400}, DefaultTuning())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bound := c.TravelBound()
	if bound.X != 0 || bound.Y >= 0 {
		t.Fatalf("bound = %v, want x=0 and y<0", bound)
	}

	offset, _, active := c.ComputeOffsetAndVelocity(testStart)
	if !offset.IsZero() || !active {
		t.Fatalf("at start: offset=%v active=%v, want zero offset and active", offset, active)
	}

	mid := at(c.Duration() / 2)
	offset, velocity, active := c.ComputeOffsetAndVelocity(mid)
	if !active {
		t.Error("curve inactive at midpoint")
	}
	if offset.Y >= 0 || offset.Y <= bound.Y {
		t.Errorf("midpoint offset.Y = %v, want strictly between 0 and %v", offset.Y, bound.Y)
	}
	if velocity.Y >= 0 {
		t.Errorf("midpoint velocity.Y = %v, want negative", velocity.Y)
	}

	offset, _, active = c.ComputeOffsetAndVelocity(at(c.Duration() + 0.001))
	if active {
		t.Error("curve active past duration")
	}
	if offset != bound {
		t.Errorf("final offset = %v, want %v", offset, bound)
	}
}

func TestFasterFlingTravelsFartherAndLonger(t *testing.T) {
	slow := mustCurve(t, geom.Vector{Y: -2000})
	fast := mustCurve(t, geom.Vector{Y: -6000})

	if fast.Duration() <= slow.Duration() {
		t.Errorf("duration: fast %v <= slow %v", fast.Duration(), slow.Duration())
	}
	if math.Abs(fast.TravelBound().Y) <= math.Abs(slow.TravelBound().Y) {
		t.Errorf("bound: fast %v <= slow %v", fast.TravelBound().Y, slow.TravelBound().Y)
	}
}

func TestControlPointsIgnoreDirectionAndGeometry(t *testing.T) {
	up := mustCurve(t, geom.Vector{Y: 3000})
	down := mustCurve(t, geom.Vector{Y: -3000})

	other, err := New(geom.Vector{Y: 3000}, testStart, geom.Vector{X: 200, Y: 200},
		geom.Size{W: 50, H: 50}, DefaultTuning())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	upP1, upP2 := up.ControlPoints()
	downP1, downP2 := down.ControlPoints()
	otherP1, otherP2 := other.ControlPoints()
	if upP1 != downP1 || upP2 != downP2 {
		t.Error("control points must not depend on direction")
	}
	if upP1 != otherP1 || upP2 != otherP2 {
		t.Error("control points must not depend on density or viewport")
	}
}
