// Package floating binds the anchor positioning engine to a component UI's
// render/update lifecycle.
//
// # Overview
//
// A [Controller] tracks a reference element and a floating element, triggers
// asynchronous position recomputation whenever either changes, and exposes
// the latest committed result as render-safe state. It is the Go rendering
// of the "floating element hook": create one per floating element, feed it
// elements through [Refs] setters (or externally via [Options.Elements]),
// and read [Controller.Position] and [Controller.Styles] at render time.
//
//	ctrl, err := floating.NewController(floating.Options{
//	    Placement: geo.PlacementBottomStart,
//	    WhileMounted: floating.WhileMounted(nil),
//	    OnChange: func() { program.Send(repaintMsg{}) },
//	})
//	...
//	ctrl.Refs().SetReference(button)
//	ctrl.Refs().SetFloating(tooltip)
//
// Position computation is asynchronous: immediately after an element is
// set, [Controller.IsPositioned] is false until the computation commits.
// Requests carry a monotonic token; a superseded request's result is
// silently discarded, so commits always reflect the latest inputs even
// when results resolve out of order.
//
// # Open tracking
//
// With [Options.TrackOpen], computation only runs while the element is open
// (visible): closing resets IsPositioned to false and suppresses
// recomputation until the next open. Behaviors flip the open state through
// [Context.SetOpen], which also reports a reason to
// [Options.OnOpenChange].
//
// # The shared context
//
// [Controller.Context] returns a stable [Context] handed to every
// interaction behavior. Besides element accessors and open state it carries
// [Context.Data], a mutable side channel for cross-behavior signaling that
// deliberately never triggers change notification.
//
// # Failure semantics
//
// A failed computation commits nothing: the previous position and
// IsPositioned survive untouched, and the error flows to
// [Options.OnError] (by default it is logged). Retries happen naturally on
// the next triggering change or continuous-update tick.
package floating
