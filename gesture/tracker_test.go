package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/inertia/geom"
)

var trackStart = time.Unix(500, 0)

func TestVelocityConstantMotion(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		vy   float64
	}{
		{"horizontal", 1200, 0},
		{"vertical", 0, -2400},
		{"diagonal", 300, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vt := NewVelocityTracker()
			// 10 samples at 8ms spacing
			for i := 0; i < 10; i++ {
				dt := time.Duration(i) * 8 * time.Millisecond
				pos := geom.Vector{
					X: tt.vx * dt.Seconds(),
					Y: tt.vy * dt.Seconds(),
				}
				vt.AddSample(pos, trackStart.Add(dt))
			}

			v := vt.Velocity()
			if math.Abs(v.X-tt.vx) > 1 || math.Abs(v.Y-tt.vy) > 1 {
				t.Errorf("Velocity() = %v, want (%v, %v)", v, tt.vx, tt.vy)
			}
		})
	}
}

func TestVelocityNeedsTwoSamples(t *testing.T) {
	vt := NewVelocityTracker()
	if v := vt.Velocity(); !v.IsZero() {
		t.Errorf("empty tracker: %v, want zero", v)
	}

	vt.AddSample(geom.Vector{X: 10, Y: 10}, trackStart)
	if v := vt.Velocity(); !v.IsZero() {
		t.Errorf("single sample: %v, want zero", v)
	}

	// Two samples with identical timestamps carry no velocity information
	vt.AddSample(geom.Vector{X: 50, Y: 50}, trackStart)
	if v := vt.Velocity(); !v.IsZero() {
		t.Errorf("coincident samples: %v, want zero", v)
	}
}

func TestWindowDropsStaleDrag(t *testing.T) {
	vt := NewVelocityTracker()

	// A slow drag that ends in a fast flick: only the flick should count.
	for i := 0; i < 20; i++ {
		dt := time.Duration(i) * 50 * time.Millisecond
		vt.AddSample(geom.Vector{Y: 10 * dt.Seconds()}, trackStart.Add(dt))
	}
	flickStart := trackStart.Add(1100 * time.Millisecond)
	for i := 0; i < 6; i++ {
		dt := time.Duration(i) * 8 * time.Millisecond
		vt.AddSample(geom.Vector{Y: 10 - 3000*dt.Seconds()}, flickStart.Add(dt))
	}

	v := vt.Velocity()
	if math.Abs(v.Y-(-3000)) > 50 {
		t.Errorf("Velocity().Y = %v, want ~-3000 (stale drag must not dilute the flick)", v.Y)
	}
}

func TestReset(t *testing.T) {
	vt := NewVelocityTracker()
	for i := 0; i < 5; i++ {
		dt := time.Duration(i) * 8 * time.Millisecond
		vt.AddSample(geom.Vector{X: 500 * dt.Seconds()}, trackStart.Add(dt))
	}
	vt.Reset()
	if v := vt.Velocity(); !v.IsZero() {
		t.Errorf("after Reset: %v, want zero", v)
	}
}
