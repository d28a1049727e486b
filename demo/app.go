// Package demo is a raylib application exercising the full fling pipeline:
// drag a scrollable surface, release, and let the driver run the curve. A
// nested child surface shows unconsumed scroll bubbling to its parent.
package demo

import (
	"log/slog"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/inertia/config"
	"github.com/pthm-cable/inertia/driver"
	"github.com/pthm-cable/inertia/fling"
	"github.com/pthm-cable/inertia/geom"
	"github.com/pthm-cable/inertia/gesture"
	"github.com/pthm-cable/inertia/telemetry"
)

// Child surface panel geometry, relative to the window.
const (
	childPanelW      = 260.0
	childPanelH      = 220.0
	childPanelMargin = 30.0
	childContentH    = 1200.0
)

// Options configures the windowed demo.
type Options struct {
	// OutputDir receives trace.csv/summary.csv for every completed fling.
	// Empty disables output.
	OutputDir string
}

// App holds the complete demo state.
type App struct {
	cfg    *config.Config
	tuning fling.Tuning

	main  *Surface
	child *Surface

	tracker    *gesture.VelocityTracker
	fling      *driver.Fling
	recorder   *telemetry.Recorder
	dragging   bool
	dragTarget *Surface
	lastMouse  geom.Vector

	perf   *telemetry.FrameCollector
	output *telemetry.OutputManager

	showTuning bool

	screenW, screenH float64
}

// NewApp builds the demo from the loaded config.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	w := float64(cfg.Screen.Width)
	h := float64(cfg.Screen.Height)
	ppi := geom.Vector{X: cfg.Demo.PixelsPerInch, Y: cfg.Demo.PixelsPerInch}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if output != nil {
		if err := cfg.WriteYAML(filepath.Join(output.Dir(), "config.yaml")); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	a := &App{
		cfg:     cfg,
		tuning:  cfg.CurveTuning(),
		main:    NewSurface(geom.Size{W: w, H: h}, geom.Size{W: w, H: cfg.Demo.ContentHeight}, ppi),
		tracker: gesture.NewVelocityTrackerWindow(time.Duration(cfg.Gesture.WindowMs * float64(time.Millisecond))),
		perf:    telemetry.NewFrameCollector(cfg.Telemetry.PerfWindow),
		output:  output,
		screenW: w,
		screenH: h,
	}
	a.child = NewSurface(
		geom.Size{W: childPanelW, H: childPanelH},
		geom.Size{W: childPanelW, H: childContentH},
		ppi,
	)
	return a, nil
}

// Run opens the window and runs the demo until closed.
func Run(opts Options) error {
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "inertia - fling demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	app, err := NewApp(cfg, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	for !rl.WindowShouldClose() {
		app.perf.StartFrame()
		app.Update(time.Now())
		app.Draw()
		app.perf.EndFrame()
	}
	return nil
}

// Update processes input and advances the active fling by one tick.
func (a *App) Update(now time.Time) {
	a.handleInput(now)

	if a.fling != nil && !a.fling.Tick(now) {
		a.finishFling()
	}
}

// startFling begins an inertial scroll on the given target.
func (a *App) startFling(velocity geom.Vector, target *Surface, now time.Time) {
	recorder := telemetry.NewRecorder(now)
	opts := driver.Options{
		Tuning:     a.tuning,
		Recorder:   recorder,
		StallTicks: a.cfg.Driver.StallTicks,
	}
	if target == a.child {
		opts.Parent = a.main
	}
	fl, err := driver.Start(velocity, now, target, opts)
	if err != nil {
		slog.Error("failed to start fling", "error", err)
		return
	}
	a.fling = fl
	a.recorder = recorder
}

// finishFling writes the trace for a completed fling and clears it.
func (a *App) finishFling() {
	if a.recorder != nil {
		summary := a.recorder.Summarize()
		summary.Log()
		if err := a.output.WriteTrace(a.recorder.Samples()); err != nil {
			slog.Warn("failed to write trace", "error", err)
		}
		if err := a.output.WriteSummary(summary); err != nil {
			slog.Warn("failed to write summary", "error", err)
		}
	}
	a.fling = nil
	a.recorder = nil
}

// cancelFling aborts the active fling, if any, without writing output.
func (a *App) cancelFling() {
	if a.fling != nil {
		a.fling.Cancel()
		a.fling = nil
		a.recorder = nil
	}
}

// Close releases output resources.
func (a *App) Close() {
	if err := a.output.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
