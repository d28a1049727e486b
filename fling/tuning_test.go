package fling

import (
	"math"
	"testing"
)

func TestDurationSaturates(t *testing.T) {
	tn := DefaultTuning()

	tests := []struct {
		name  string
		speed float64
	}{
		{"slow", 200},
		{"medium", 2500},
		{"fast", 8000},
		{"very fast", 50000},
	}

	prev := 0.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tn.Duration(tt.speed)
			if d <= prev {
				t.Errorf("Duration(%v) = %v, want > %v", tt.speed, d, prev)
			}
			if d >= tn.MaxDuration {
				t.Errorf("Duration(%v) = %v, want < MaxDuration %v", tt.speed, d, tn.MaxDuration)
			}
			prev = d
		})
	}

	if got := tn.Duration(0); got != 0 {
		t.Errorf("Duration(0) = %v, want 0", got)
	}
	// Half saturation by definition
	half := tn.Duration(tn.HalfSaturationVelocity)
	if math.Abs(half-tn.MaxDuration/2) > 1e-9 {
		t.Errorf("Duration(half saturation) = %v, want %v", half, tn.MaxDuration/2)
	}
}

func TestControlPointsForClampsAndInterpolates(t *testing.T) {
	tn := DefaultTuning()
	first := tn.ControlPoints[0]
	last := tn.ControlPoints[len(tn.ControlPoints)-1]

	// Below the table: first row
	p1, p2 := tn.ControlPointsFor(10)
	if p1 != first.P1 || p2 != first.P2 {
		t.Errorf("below table: got %v %v, want %v %v", p1, p2, first.P1, first.P2)
	}

	// Above the table: last row
	p1, p2 = tn.ControlPointsFor(1e6)
	if p1 != last.P1 || p2 != last.P2 {
		t.Errorf("above table: got %v %v, want %v %v", p1, p2, last.P1, last.P2)
	}

	// Midway between first two rows: midpoint of the control points
	lo, hi := tn.ControlPoints[0], tn.ControlPoints[1]
	mid := (lo.Velocity + hi.Velocity) / 2
	p1, p2 = tn.ControlPointsFor(mid)
	wantP1X := (lo.P1.X + hi.P1.X) / 2
	if math.Abs(p1.X-wantP1X) > 1e-9 {
		t.Errorf("midpoint p1.x = %v, want %v", p1.X, wantP1X)
	}
	wantP2Y := (lo.P2.Y + hi.P2.Y) / 2
	if math.Abs(p2.Y-wantP2Y) > 1e-9 {
		t.Errorf("midpoint p2.y = %v, want %v", p2.Y, wantP2Y)
	}
}

func TestControlPointsSameSpeedSameShape(t *testing.T) {
	tn := DefaultTuning()

	aP1, aP2 := tn.ControlPointsFor(1800)
	bP1, bP2 := tn.ControlPointsFor(1800)
	if aP1 != bP1 || aP2 != bP2 {
		t.Error("identical speeds must yield identical control points")
	}
}
