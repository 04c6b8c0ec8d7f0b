package floating

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/perchui/perch/pkg/anchor"
)

// =============================================================================
// Styles - Render-Ready Placement
// =============================================================================

// Styles is the ready-to-apply rendering of a committed position:
// coordinates rounded to whole cells plus the strategy they were computed
// under. Until the first commit Positioned is false and the coordinates
// are zero.
type Styles struct {
	X, Y       int
	Strategy   anchor.Strategy
	Transform  bool
	Positioned bool
}

// Styles snapshots the controller's committed position for rendering.
func (c *Controller) Styles() Styles {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Styles{
		Strategy:   c.cfg.Strategy,
		Transform:  c.transform,
		Positioned: c.positioned,
	}
	if c.positioned {
		s.X = int(math.Round(c.pos.X))
		s.Y = int(math.Round(c.pos.Y))
		s.Strategy = c.pos.Strategy
	}
	return s
}

// Offset returns the cell offset to apply to the floating element.
func (s Styles) Offset() (x, y int) { return s.X, s.Y }

// Style returns a lipgloss style for the floating element. With Transform
// unset the offsets are baked in as margins (clamped at zero — terminal
// cells have no negative margins); with Transform set the style is plain
// and the overlay compositor applies [Styles.Offset] instead, which avoids
// re-rendering the floating content when only the offsets change.
func (s Styles) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if !s.Positioned || s.Transform {
		return style
	}
	return style.MarginLeft(max(s.X, 0)).MarginTop(max(s.Y, 0))
}
