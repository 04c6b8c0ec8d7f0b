package anchor

import (
	"github.com/perchui/perch/pkg/geo"
)

// =============================================================================
// Middleware - Ordered Adjustment Pipeline
// =============================================================================

// Middleware is one named adjustment step in the positioning pipeline.
// Implementations mutate the State they are handed; they must not retain it
// past the Run call.
type Middleware interface {
	// Name identifies the middleware in Position.MiddlewareData.
	Name() string

	// Run adjusts the in-progress computation.
	Run(st *State) error
}

// State is the mutable computation state threaded through the middleware
// pipeline. X/Y start at the base coordinates for Placement and are refined
// by each middleware in turn.
type State struct {
	X, Y      float64
	Placement geo.Placement
	Strategy  Strategy

	// Reference and Floating are the bounding rects snapshotted at the
	// start of the computation.
	Reference geo.Rect
	Floating  geo.Rect

	// Boundary is the clipping rect overflow middleware measures against.
	// Zero means unbounded.
	Boundary geo.Rect

	// Data accumulates per-middleware diagnostics.
	Data map[string]any

	reset bool
}

// RequestReset restarts the pipeline with a new placement. The engine
// recomputes base coordinates for the placement and reruns all middleware
// from the beginning, up to an internal reset limit.
func (st *State) RequestReset(p geo.Placement) {
	st.Placement = p
	st.reset = true
}

// Bounded reports whether a clipping boundary is configured.
func (st *State) Bounded() bool { return !st.Boundary.IsEmpty() }

// FloatingRect returns the floating rect translated to the current
// in-progress coordinates.
func (st *State) FloatingRect() geo.Rect {
	return geo.NewRect(st.X, st.Y, st.Floating.Width, st.Floating.Height)
}

// =============================================================================
// Offset
// =============================================================================

type offsetMiddleware struct {
	main  float64
	cross float64
}

// Offset displaces the floating element away from the reference along the
// placement's main axis by main cells. See [OffsetCross] for displacement
// along the cross axis as well.
func Offset(main float64) Middleware {
	return offsetMiddleware{main: main}
}

// OffsetCross displaces along both the main axis and the cross axis. A
// positive cross value moves towards the "end" alignment direction.
func OffsetCross(main, cross float64) Middleware {
	return offsetMiddleware{main: main, cross: cross}
}

func (offsetMiddleware) Name() string { return "offset" }

func (m offsetMiddleware) Run(st *State) error {
	switch st.Placement.Side() {
	case geo.SideTop:
		st.Y -= m.main
		st.X += m.cross
	case geo.SideBottom:
		st.Y += m.main
		st.X += m.cross
	case geo.SideLeft:
		st.X -= m.main
		st.Y += m.cross
	case geo.SideRight:
		st.X += m.main
		st.Y += m.cross
	}
	st.Data[m.Name()] = map[string]any{"main": m.main, "cross": m.cross}
	return nil
}

// =============================================================================
// Shift
// =============================================================================

type shiftMiddleware struct {
	padding float64
}

// Shift slides the floating element along both axes to keep it inside the
// boundary, with padding cells kept clear of the boundary edges. Without a
// configured boundary it is a no-op.
func Shift(padding float64) Middleware {
	return shiftMiddleware{padding: padding}
}

func (shiftMiddleware) Name() string { return "shift" }

func (m shiftMiddleware) Run(st *State) error {
	if !st.Bounded() {
		return nil
	}

	origX, origY := st.X, st.Y
	minX := st.Boundary.Left() + m.padding
	maxX := st.Boundary.Right() - m.padding - st.Floating.Width
	minY := st.Boundary.Top() + m.padding
	maxY := st.Boundary.Bottom() - m.padding - st.Floating.Height

	st.X = clamp(st.X, minX, maxX)
	st.Y = clamp(st.Y, minY, maxY)

	st.Data[m.Name()] = map[string]any{"x": st.X - origX, "y": st.Y - origY}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// =============================================================================
// Flip
// =============================================================================

type flipMiddleware struct{}

// Flip swaps the placement to the opposite side when the floating element
// overflows the boundary on its main axis and the opposite side has room.
// Without a configured boundary it is a no-op.
func Flip() Middleware {
	return flipMiddleware{}
}

func (flipMiddleware) Name() string { return "flip" }

func (m flipMiddleware) Run(st *State) error {
	if !st.Bounded() {
		return nil
	}

	// One flip per computation. A second overflow after flipping means
	// neither side fits; keep the flipped placement and let Shift cope.
	if flipped, ok := st.Data[m.Name()].(bool); ok && flipped {
		return nil
	}

	if m.mainAxisOverflow(st, st.Placement) <= 0 {
		return nil
	}

	opposite := st.Placement.Opposite()
	if m.mainAxisOverflow(st, opposite) < m.mainAxisOverflow(st, st.Placement) {
		st.Data[m.Name()] = true
		st.RequestReset(opposite)
	}
	return nil
}

// mainAxisOverflow measures how far the floating rect would spill past the
// boundary on the placement's attachment side. Non-positive means it fits.
func (flipMiddleware) mainAxisOverflow(st *State, p geo.Placement) float64 {
	x, y := baseCoords(st.Reference, st.Floating, p)
	fl := geo.NewRect(x, y, st.Floating.Width, st.Floating.Height)

	switch p.Side() {
	case geo.SideTop:
		return st.Boundary.Top() - fl.Top()
	case geo.SideBottom:
		return fl.Bottom() - st.Boundary.Bottom()
	case geo.SideLeft:
		return st.Boundary.Left() - fl.Left()
	case geo.SideRight:
		return fl.Right() - st.Boundary.Right()
	}
	return 0
}
