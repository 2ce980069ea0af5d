package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Zoom returns the current zoom factor.
func (s *Session) Zoom() float64 {
	return s.zoom
}

// ZoomPercent formats the current zoom as the UI shows it, e.g. "120%".
func (s *Session) ZoomPercent() string {
	return fmt.Sprintf("%d%%", int(s.zoom*100))
}

// ZoomIn multiplies the zoom by the configured step, clamped to the limits.
func (s *Session) ZoomIn() {
	s.setZoom(s.zoom * s.cfg.ZoomStep)
}

// ZoomOut divides the zoom by the configured step, clamped to the limits.
func (s *Session) ZoomOut() {
	s.setZoom(s.zoom / s.cfg.ZoomStep)
}

// SetZoomPercent updates the zoom from percentage text such as "150" or
// "150%". Invalid input leaves the zoom unchanged and reports an error.
func (s *Session) SetZoomPercent(text string) error {
	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	pct, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid zoom %q: %w", text, err)
	}
	s.setZoom(pct / 100)
	return nil
}

func (s *Session) setZoom(z float64) {
	if z < s.cfg.ZoomMin {
		z = s.cfg.ZoomMin
	}
	if z > s.cfg.ZoomMax {
		z = s.cfg.ZoomMax
	}
	s.zoom = z
}
