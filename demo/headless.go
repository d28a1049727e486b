package demo

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pthm-cable/inertia/config"
	"github.com/pthm-cable/inertia/driver"
	"github.com/pthm-cable/inertia/geom"
	"github.com/pthm-cable/inertia/telemetry"
)

// HeadlessOptions configures a scripted headless fling run.
type HeadlessOptions struct {
	OutputDir string
	Velocity  geom.Vector // px/s at release
	FPS       int         // tick rate; 0 = config target FPS
}

// RunHeadless simulates one scripted fling without opening a window and
// writes its trace and summary. Useful for tuning comparisons and CI.
func RunHeadless(opts HeadlessOptions) error {
	cfg := config.Cfg()

	fps := opts.FPS
	if fps <= 0 {
		fps = cfg.Screen.TargetFPS
	}
	if fps <= 0 {
		fps = 60
	}

	viewport := geom.Size{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)}
	ppi := geom.Vector{X: cfg.Demo.PixelsPerInch, Y: cfg.Demo.PixelsPerInch}
	surface := NewSurface(viewport, geom.Size{W: viewport.W, H: cfg.Demo.ContentHeight}, ppi)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("headless run: %w", err)
	}
	defer output.Close()
	if output != nil {
		if err := cfg.WriteYAML(filepath.Join(output.Dir(), "config.yaml")); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	start := time.Now()
	recorder := telemetry.NewRecorder(start)
	fl, err := driver.Start(opts.Velocity, start, surface, driver.Options{
		Tuning:     cfg.CurveTuning(),
		Recorder:   recorder,
		StallTicks: cfg.Driver.StallTicks,
	})
	if err != nil {
		return fmt.Errorf("headless run: %w", err)
	}

	slog.Info("headless fling",
		"velocity_x", opts.Velocity.X,
		"velocity_y", opts.Velocity.Y,
		"duration", fl.Curve().Duration(),
		"fps", fps,
	)

	dt := time.Second / time.Duration(fps)
	for now := start; fl.Tick(now); now = now.Add(dt) {
	}

	summary := recorder.Summarize()
	summary.Log()
	if err := output.WriteTrace(recorder.Samples()); err != nil {
		return fmt.Errorf("headless run: %w", err)
	}
	if err := output.WriteSummary(summary); err != nil {
		return fmt.Errorf("headless run: %w", err)
	}
	return nil
}
