package telemetry

import "time"

// FrameCollector tracks frame timing over a rolling window. Used by the
// windowed demo to keep an eye on per-frame cost while a fling is running.
type FrameCollector struct {
	windowSize  int
	samples     []time.Duration
	writeIndex  int
	sampleCount int
	frameStart  time.Time
}

// NewFrameCollector creates a frame timing collector.
// windowSize: number of frames to average over (e.g., 60 for 1s at 60fps).
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{
		windowSize: windowSize,
		samples:    make([]time.Duration, windowSize),
	}
}

// StartFrame begins timing a frame.
func (p *FrameCollector) StartFrame() {
	p.frameStart = time.Now()
}

// EndFrame finishes timing the current frame and records the sample.
func (p *FrameCollector) EndFrame() {
	if p.frameStart.IsZero() {
		return
	}
	p.samples[p.writeIndex] = time.Since(p.frameStart)
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// Avg returns the mean frame duration over the window.
func (p *FrameCollector) Avg() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i]
	}
	return total / time.Duration(p.sampleCount)
}

// Max returns the worst frame duration over the window.
func (p *FrameCollector) Max() time.Duration {
	var worst time.Duration
	for i := 0; i < p.sampleCount; i++ {
		if p.samples[i] > worst {
			worst = p.samples[i]
		}
	}
	return worst
}
