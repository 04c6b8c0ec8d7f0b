// Package pkg provides the core libraries for Perch floating-element
// positioning.
//
// # Overview
//
// Perch anchors floating elements (tooltips, menus, popovers) to reference
// elements in terminal UIs and composes the interaction behaviors that
// open and close them. The pkg directory is organized into five areas:
//
//  1. [geo] - Geometry primitives (rects, placements)
//  2. [anchor] - Pure positioning (compute engine, middleware, auto-update)
//  3. [floating] - Reactive controller (elements in, committed positions out)
//  4. [interactions] - Behavior composition (hover, click, dismiss, ...)
//  5. [tui] - bubbletea bridge (messages, event routing, overlay)
//
// # Architecture
//
// The typical data flow through Perch:
//
//	element rects
//	         ↓
//	    [anchor] package (placement + middleware pipeline)
//	         ↓
//	    [floating] package (async recompute, latest-wins commit)
//	         ↓
//	    [interactions] package (merged event handlers + attributes)
//	         ↓
//	    [tui] package (tea messages, overlay compositing)
//
// # Quick Start
//
// Anchor a tooltip below a button and open it on hover:
//
//	import (
//	    "github.com/perchui/perch/pkg/anchor"
//	    "github.com/perchui/perch/pkg/floating"
//	    "github.com/perchui/perch/pkg/interactions"
//	)
//
//	// 1. Build a controller over the two elements
//	c, _ := floating.NewController(floating.Options{
//	    Middleware:   []anchor.Middleware{anchor.Offset(1), anchor.Flip()},
//	    WhileMounted: floating.WhileMounted(nil),
//	    Elements:     floating.Elements{Reference: button, Floating: tip},
//	    TrackOpen:    true,
//	})
//	defer c.Close()
//
//	// 2. Compose interaction behaviors
//	composed := interactions.Compose(
//	    interactions.Hover(c.Context(), nil),
//	    interactions.Dismiss(c.Context(), nil),
//	)
//
//	// 3. Route input to the merged props, render at c.Styles()
//	props := composed.ReferenceProps(nil)
//
// # Main Packages
//
// ## Positioning
//
// [geo] - Rectangles, points, and the 12-value placement grammar
// (side + optional start/end alignment).
//
// [anchor] - Stateless position computation: base coordinates per
// placement, then a middleware pipeline (offset, shift, flip) with bounded
// reset semantics. AutoUpdate polls element rects for environmental
// changes.
//
// [floating] - The stateful controller: tracks elements, recomputes
// asynchronously with latest-wins sequencing, manages the 0-or-1
// subscription lifecycle, and exposes render-ready styles.
//
// ## Interaction
//
// [interactions] - Behavior descriptors and the prop merge engine: handler
// keys chain in order, everything else is last-write-wins.
//
// ## Infrastructure
//
// [tui] - bubbletea integration: controller callbacks as tea messages,
// key/mouse routing with hover synthesis, ANSI-aware overlay compositing.
//
// [errors] - Structured error codes shared across the module.
//
// [observability] - Pluggable hooks for compute, subscription, and prop
// merge events.
package pkg
