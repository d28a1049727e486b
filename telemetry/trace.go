// Package telemetry records per-tick fling traces and aggregates them into
// summaries suitable for CSV output and structured logging.
package telemetry

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/pthm-cable/inertia/geom"
)

// FrameSample is one per-tick observation of a driven fling.
type FrameSample struct {
	TimeSec   float64 `csv:"time_sec"`
	OffsetX   float64 `csv:"offset_x"`
	OffsetY   float64 `csv:"offset_y"`
	DeltaX    float64 `csv:"delta_x"`
	DeltaY    float64 `csv:"delta_y"`
	VelocityX float64 `csv:"velocity_x"`
	VelocityY float64 `csv:"velocity_y"`
	Active    bool    `csv:"active"`
}

// Recorder accumulates frame samples for one fling.
type Recorder struct {
	start   time.Time
	samples []FrameSample
}

// NewRecorder creates a recorder for a fling that started at the given time.
func NewRecorder(start time.Time) *Recorder {
	return &Recorder{start: start}
}

// Record appends one frame observation.
func (r *Recorder) Record(at time.Time, offset, delta, velocity geom.Vector, active bool) {
	r.samples = append(r.samples, FrameSample{
		TimeSec:   at.Sub(r.start).Seconds(),
		OffsetX:   offset.X,
		OffsetY:   offset.Y,
		DeltaX:    delta.X,
		DeltaY:    delta.Y,
		VelocityX: velocity.X,
		VelocityY: velocity.Y,
		Active:    active,
	})
}

// Samples returns the recorded frames in order.
func (r *Recorder) Samples() []FrameSample {
	return r.samples
}

// Summary aggregates a recorded fling trace.
type Summary struct {
	Frames        int     `csv:"frames"`
	DurationSec   float64 `csv:"duration_sec"`
	TravelX       float64 `csv:"travel_x"`
	TravelY       float64 `csv:"travel_y"`
	PeakVelocity  float64 `csv:"peak_velocity"`
	P50FrameDelta float64 `csv:"p50_frame_delta"`
	P90FrameDelta float64 `csv:"p90_frame_delta"`
}

// Summarize computes aggregate statistics over the recorded frames.
func (r *Recorder) Summarize() Summary {
	s := Summary{Frames: len(r.samples)}
	if len(r.samples) == 0 {
		return s
	}

	deltas := make([]float64, 0, len(r.samples))
	for _, f := range r.samples {
		v := math.Hypot(f.VelocityX, f.VelocityY)
		if v > s.PeakVelocity {
			s.PeakVelocity = v
		}
		deltas = append(deltas, math.Hypot(f.DeltaX, f.DeltaY))
	}
	last := r.samples[len(r.samples)-1]
	s.DurationSec = last.TimeSec
	s.TravelX = last.OffsetX
	s.TravelY = last.OffsetY

	sort.Float64s(deltas)
	s.P50FrameDelta = Percentile(deltas, 0.5)
	s.P90FrameDelta = Percentile(deltas, 0.9)
	return s
}

// Log emits the summary via slog.
func (s Summary) Log() {
	slog.Info("fling summary",
		"frames", s.Frames,
		"duration_sec", s.DurationSec,
		"travel_x", s.TravelX,
		"travel_y", s.TravelY,
		"peak_velocity", s.PeakVelocity,
		"p50_frame_delta", s.P50FrameDelta,
		"p90_frame_delta", s.P90FrameDelta,
	)
}

// Percentile returns the p-th percentile (p in [0,1]) of an ascending-sorted
// slice using linear interpolation between ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
