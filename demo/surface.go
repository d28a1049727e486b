package demo

import "github.com/pthm-cable/inertia/geom"

// Surface is a scrollable view onto tall virtual content. It implements
// driver.ScrollTarget: deltas follow finger motion, so a negative y delta
// (content dragged upward) scrolls further down the content.
type Surface struct {
	viewport geom.Size
	content  geom.Size
	ppi      geom.Vector
	scroll   geom.Vector // top-left scroll position, clamped to content
}

// NewSurface creates a surface with the given viewport, content extent and
// pixel density.
func NewSurface(viewport, content geom.Size, ppi geom.Vector) *Surface {
	return &Surface{viewport: viewport, content: content, ppi: ppi}
}

// ScrollBy consumes as much of delta as the content bounds allow and
// returns the unconsumed remainder.
func (s *Surface) ScrollBy(delta geom.Vector) geom.Vector {
	maxX := s.content.W - s.viewport.W
	if maxX < 0 {
		maxX = 0
	}
	maxY := s.content.H - s.viewport.H
	if maxY < 0 {
		maxY = 0
	}

	newX := clamp(s.scroll.X-delta.X, 0, maxX)
	newY := clamp(s.scroll.Y-delta.Y, 0, maxY)
	consumed := geom.Vector{X: s.scroll.X - newX, Y: s.scroll.Y - newY}
	s.scroll = geom.Vector{X: newX, Y: newY}
	return delta.Sub(consumed)
}

// Viewport returns the visible extent.
func (s *Surface) Viewport() geom.Size {
	return s.viewport
}

// PixelsPerInch returns the display density.
func (s *Surface) PixelsPerInch() geom.Vector {
	return s.ppi
}

// Scroll returns the current scroll position.
func (s *Surface) Scroll() geom.Vector {
	return s.scroll
}

// ScrollFractionY returns the vertical scroll position as a fraction of the
// scrollable range, for drawing a scrollbar.
func (s *Surface) ScrollFractionY() float64 {
	maxY := s.content.H - s.viewport.H
	if maxY <= 0 {
		return 0
	}
	return s.scroll.Y / maxY
}

// Resize updates the viewport, keeping the scroll position in bounds.
func (s *Surface) Resize(viewport geom.Size) {
	s.viewport = viewport
	s.ScrollBy(geom.Vector{})
}

// ResetScroll jumps back to the content origin.
func (s *Surface) ResetScroll() {
	s.scroll = geom.Vector{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
