package demo

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/inertia/geom"
)

// wheelStep is the scroll distance per mouse wheel notch, in pixels.
const wheelStep = 60.0

// handleInput processes mouse and keyboard input.
func (a *App) handleInput(now time.Time) {
	a.handleResize()

	pos := rl.GetMousePosition()
	mouse := geom.Vector{X: float64(pos.X), Y: float64(pos.Y)}

	// Tuning overlay owns the mouse while visible
	if a.showTuning && a.overlayContains(mouse) {
		if rl.IsKeyPressed(rl.KeyT) {
			a.showTuning = false
		}
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		// A touch-down interrupts any running fling
		a.cancelFling()
		a.dragging = true
		a.dragTarget = a.surfaceAt(mouse)
		a.tracker.Reset()
		a.tracker.AddSample(mouse, now)
		a.lastMouse = mouse
	}

	if a.dragging && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := mouse.Sub(a.lastMouse)
		if !delta.IsZero() {
			remainder := a.dragTarget.ScrollBy(delta)
			if a.dragTarget == a.child && !remainder.IsZero() {
				a.main.ScrollBy(remainder)
			}
		}
		a.tracker.AddSample(mouse, now)
		a.lastMouse = mouse
	}

	if a.dragging && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.dragging = false
		velocity := a.tracker.Velocity()
		if velocity.Length() >= a.cfg.Gesture.MinFlingVelocity {
			a.startFling(velocity, a.dragTarget, now)
		}
	}

	// Mouse wheel scrolls the hovered surface directly
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !a.dragging {
		a.cancelFling()
		target := a.surfaceAt(mouse)
		remainder := target.ScrollBy(geom.Vector{Y: float64(wheel) * wheelStep})
		if target == a.child && !remainder.IsZero() {
			a.main.ScrollBy(remainder)
		}
	}

	if rl.IsKeyPressed(rl.KeyT) {
		a.showTuning = !a.showTuning
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.cancelFling()
		a.main.ResetScroll()
		a.child.ResetScroll()
	}
}

// handleResize propagates window resizes to the main surface.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == a.screenW && h == a.screenH {
		return
	}
	a.screenW = w
	a.screenH = h
	a.main.Resize(geom.Size{W: w, H: h})
}

// surfaceAt returns the surface under the given screen position.
func (a *App) surfaceAt(mouse geom.Vector) *Surface {
	x, y, w, h := a.childPanelRect()
	if mouse.X >= x && mouse.X < x+w && mouse.Y >= y && mouse.Y < y+h {
		return a.child
	}
	return a.main
}

// childPanelRect returns the on-screen rectangle of the nested surface.
func (a *App) childPanelRect() (x, y, w, h float64) {
	return a.screenW - childPanelW - childPanelMargin, childPanelMargin + 40, childPanelW, childPanelH
}
