// Package anchor implements the pure anchor-positioning engine consumed by
// the floating-element controller.
//
// # Overview
//
// The engine answers one question: given a reference element, a floating
// element, and a configuration, where should the floating element go? It is
// a pure function over bounding rectangles with no knowledge of rendering,
// reactivity, or interaction handling — those live in pkg/floating and
// pkg/interactions, which consume this package strictly through the
// [ComputeFunc] and [CancelFunc] contracts.
//
// # Computing a position
//
//	pos, err := anchor.Compute(ctx, reference, floating, anchor.Config{
//	    Placement: geo.PlacementBottomStart,
//	    Middleware: []anchor.Middleware{
//	        anchor.Offset(1),
//	        anchor.Flip(),
//	        anchor.Shift(1),
//	    },
//	})
//
// The base coordinates follow the placement's side and alignment; each
// middleware then adjusts them in order. Middleware is opaque to callers:
// it reads and writes a [State] and may record diagnostics under its name
// in [Position].MiddlewareData.
//
// # Elements
//
// Anything with a bounding rectangle can anchor a floating element. Real UI
// components implement [Element] directly; [Virtual] adapts a plain
// rect-producing function, which is how callers position against a cursor
// location or an arbitrary region with no backing component.
//
// # Continuous updates
//
// [AutoUpdate] keeps a position fresh while both elements remain mounted by
// polling their bounding rects and invoking the update callback on change.
// It is the terminal analog of scroll/resize observation: layout reflows in
// a TUI are driven by resize and content changes, which both surface as
// rect changes.
package anchor
