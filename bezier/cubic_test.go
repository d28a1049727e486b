package bezier

import (
	"math"
	"testing"
)

func TestLinearCurve(t *testing.T) {
	// Control points on the diagonal make the easing an identity.
	c := New(1.0/3.0, 1.0/3.0, 2.0/3.0, 2.0/3.0)

	for _, x := range []float64{0, 0.05, 0.25, 0.5, 0.75, 0.95, 1} {
		got := c.Solve(x)
		if math.Abs(got-x) > 1e-5 {
			t.Errorf("Solve(%v) = %v, want %v", x, got, x)
		}
		slope := c.Slope(x)
		if math.Abs(slope-1) > 1e-4 {
			t.Errorf("Slope(%v) = %v, want 1", x, slope)
		}
	}
}

func TestSolveTInvertsSampleX(t *testing.T) {
	curves := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"ease", 0.25, 0.1, 0.25, 1.0},
		{"ease-out", 0.0, 0.0, 0.58, 1.0},
		{"fling-slow", 0.55, 0.75, 0.80, 1.00},
		{"fling-fast", 0.12, 0.90, 0.35, 1.00},
	}

	for _, tc := range curves {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.x1, tc.y1, tc.x2, tc.y2)
			for i := 0; i <= 20; i++ {
				param := float64(i) / 20
				x := c.SampleX(param)
				got := c.SolveT(x)
				if math.Abs(c.SampleX(got)-x) > 1e-5 {
					t.Errorf("SolveT(%v) = %v, SampleX mismatch %v", x, got, c.SampleX(got))
				}
			}
		})
	}
}

func TestSolveEndpoints(t *testing.T) {
	c := New(0.3, 0.82, 0.55, 1.0)

	if got := c.Solve(0); got != 0 {
		t.Errorf("Solve(0) = %v, want 0", got)
	}
	if got := c.Solve(1); math.Abs(got-1) > 1e-6 {
		t.Errorf("Solve(1) = %v, want 1", got)
	}
}

func TestSolveMonotonic(t *testing.T) {
	c := New(0.12, 0.90, 0.35, 1.00)

	prev := -1.0
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		y := c.Solve(x)
		if y < prev-1e-9 {
			t.Fatalf("Solve not monotonic at x=%v: %v < %v", x, y, prev)
		}
		prev = y
	}
}

func TestSolveOutsideRange(t *testing.T) {
	// p1 on the y-axis gives zero start gradient; p2y=1 with p2x<1 gives
	// zero end gradient, so the extension is flat on both sides.
	c := New(0.0, 0.75, 0.80, 1.00)

	if got := c.Solve(-0.5); got != 0 {
		t.Errorf("Solve(-0.5) = %v, want 0", got)
	}
	if got := c.Solve(1.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("Solve(1.5) = %v, want 1", got)
	}
}

func TestSlopeDecaysForEaseOut(t *testing.T) {
	// An ease-out curve must decelerate: slope near the end below slope
	// near the start.
	c := New(0.30, 0.82, 0.55, 1.00)

	early := c.Slope(0.1)
	late := c.Slope(0.95)
	if late >= early {
		t.Errorf("expected deceleration, got slope(0.1)=%v slope(0.95)=%v", early, late)
	}
	if end := c.Slope(1); end != c.endGradient {
		t.Errorf("Slope(1) = %v, want end gradient %v", end, c.endGradient)
	}
}
