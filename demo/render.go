package demo

import (
	"fmt"
	"math"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/inertia/geom"
)

// Content row height for the striped test pattern.
const rowHeight = 80.0

const (
	overlayW = 320.0
	overlayH = 190.0
)

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	a.drawMainContent()
	a.drawChildPanel()
	a.drawScrollbar()
	a.drawHUD()
	if a.showTuning {
		a.drawTuningOverlay()
	}

	rl.EndDrawing()
}

// drawMainContent draws the striped scrollable content of the main surface.
func (a *App) drawMainContent() {
	scroll := a.main.Scroll()
	firstRow := int(scroll.Y / rowHeight)
	yOff := math.Mod(scroll.Y, rowHeight)

	rows := int(a.screenH/rowHeight) + 2
	for i := 0; i < rows; i++ {
		row := firstRow + i
		y := float64(i)*rowHeight - yOff
		color := rl.Color{R: 235, G: 238, B: 242, A: 255}
		if row%2 == 1 {
			color = rl.Color{R: 214, G: 220, B: 228, A: 255}
		}
		rl.DrawRectangle(0, int32(y), int32(a.screenW), int32(rowHeight), color)
		rl.DrawText(fmt.Sprintf("row %d", row), 20, int32(y+rowHeight/2-10), 20, rl.DarkGray)
	}
}

// drawChildPanel draws the nested scrollable surface.
func (a *App) drawChildPanel() {
	x, y, w, h := a.childPanelRect()
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.Color{R: 250, G: 250, B: 245, A: 255})

	scroll := a.child.Scroll()
	firstRow := int(scroll.Y / (rowHeight / 2))
	yOff := math.Mod(scroll.Y, rowHeight/2)
	rows := int(h/(rowHeight/2)) + 2

	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	for i := 0; i < rows; i++ {
		row := firstRow + i
		ry := y + float64(i)*(rowHeight/2) - yOff
		if row%2 == 1 {
			rl.DrawRectangle(int32(x), int32(ry), int32(w), int32(rowHeight/2), rl.Color{R: 236, G: 232, B: 220, A: 255})
		}
		rl.DrawText(fmt.Sprintf("item %d", row), int32(x+12), int32(ry+10), 16, rl.Gray)
	}
	rl.EndScissorMode()

	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), rl.DarkGray)
	rl.DrawText("nested surface (bubbles to parent)", int32(x), int32(y-18), 14, rl.Gray)
}

// drawScrollbar draws a vertical position indicator for the main surface.
func (a *App) drawScrollbar() {
	trackH := a.screenH - 20
	thumbH := 60.0
	yRange := trackH - thumbH
	thumbY := 10 + yRange*a.main.ScrollFractionY()

	rl.DrawRectangle(int32(a.screenW-12), 10, 6, int32(trackH), rl.LightGray)
	rl.DrawRectangle(int32(a.screenW-12), int32(thumbY), 6, int32(thumbH), rl.Gray)
}

// drawHUD draws the status line.
func (a *App) drawHUD() {
	status := "idle - drag and release to fling, T: tuning, R: reset"
	if a.dragging {
		status = "dragging"
	} else if a.fling != nil {
		offset, velocity, _ := a.fling.Curve().ComputeOffsetAndVelocity(time.Now())
		status = fmt.Sprintf("fling: offset=(%.0f, %.0f) velocity=(%.0f, %.0f) px/s",
			offset.X, offset.Y, velocity.X, velocity.Y)
	}

	rl.DrawRectangle(0, 0, int32(a.screenW), 28, rl.Color{R: 40, G: 44, B: 52, A: 230})
	rl.DrawText(status, 10, 6, 16, rl.RayWhite)

	frame := a.perf.Avg()
	rl.DrawText(fmt.Sprintf("%.1f ms/frame", float64(frame.Microseconds())/1000.0),
		int32(a.screenW-120), 6, 16, rl.LightGray)
}

// drawTuningOverlay draws live sliders for the curve constants. Changes
// apply to the next fling; the active curve is fixed at construction.
func (a *App) drawTuningOverlay() {
	x, y := a.overlayOrigin()
	rl.DrawRectangle(int32(x), int32(y), int32(overlayW), int32(overlayH), rl.Color{R: 255, G: 255, B: 255, A: 240})
	rl.DrawRectangleLines(int32(x), int32(y), int32(overlayW), int32(overlayH), rl.DarkGray)

	px := float32(x + 15)
	py := float32(y + 10)
	rl.DrawText("Curve Tuning (next fling)", int32(px), int32(py), 18, rl.DarkGray)
	py += 30

	rl.DrawText("Bounds multiplier (viewports)", int32(px), int32(py), 14, rl.Gray)
	py += 18
	a.tuning.BoundsMultiplier = float64(gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: overlayW - 100, Height: 20},
		"1", "6",
		float32(a.tuning.BoundsMultiplier), 1, 6,
	))
	rl.DrawText(fmt.Sprintf("%.1f", a.tuning.BoundsMultiplier), int32(px+overlayW-70), int32(py+2), 16, rl.DarkGray)
	py += 32

	rl.DrawText("Max duration (s)", int32(px), int32(py), 14, rl.Gray)
	py += 18
	a.tuning.MaxDuration = float64(gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: overlayW - 100, Height: 20},
		"0.5", "6.0",
		float32(a.tuning.MaxDuration), 0.5, 6.0,
	))
	rl.DrawText(fmt.Sprintf("%.2f", a.tuning.MaxDuration), int32(px+overlayW-70), int32(py+2), 16, rl.DarkGray)
	py += 32

	rl.DrawText("Half-saturation velocity (px/s)", int32(px), int32(py), 14, rl.Gray)
	py += 18
	a.tuning.HalfSaturationVelocity = float64(gui.SliderBar(
		rl.Rectangle{X: px, Y: py, Width: overlayW - 100, Height: 20},
		"500", "8000",
		float32(a.tuning.HalfSaturationVelocity), 500, 8000,
	))
	rl.DrawText(fmt.Sprintf("%.0f", a.tuning.HalfSaturationVelocity), int32(px+overlayW-70), int32(py+2), 16, rl.DarkGray)
}

// overlayOrigin returns the top-left corner of the tuning overlay.
func (a *App) overlayOrigin() (x, y float64) {
	return 10, a.screenH - overlayH - 10
}

// overlayContains reports whether the tuning overlay covers the position.
func (a *App) overlayContains(mouse geom.Vector) bool {
	x, y := a.overlayOrigin()
	return mouse.X >= x && mouse.X < x+overlayW && mouse.Y >= y && mouse.Y < y+overlayH
}
