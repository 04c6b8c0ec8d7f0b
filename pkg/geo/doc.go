// Package geo provides the geometry primitives shared by the anchor engine
// and the floating-element controller.
//
// # Overview
//
// All coordinates are in terminal cells with the origin at the top-left
// corner, x growing rightwards and y growing downwards. Values are float64
// so middleware can produce fractional adjustments; callers round at the
// render boundary.
//
// The central types are [Rect] (an axis-aligned bounding box), [Point], and
// [Placement] — the side/alignment pair that names where a floating element
// sits relative to its reference ("bottom", "top-start", "right-end", ...).
//
// # Placements
//
// A placement is a [Side] plus an optional [Alignment]:
//
//	p := geo.PlacementBottomStart
//	p.Side()      // geo.SideBottom
//	p.Alignment() // geo.AlignStart
//
// [ParsePlacement] validates user-supplied placement strings:
//
//	p, err := geo.ParsePlacement("top-end")
package geo
