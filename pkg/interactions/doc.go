// Package interactions composes independently-authored interaction
// behaviors into merged, spread-ready prop sets for the reference element,
// the floating element, and list items.
//
// # Overview
//
// A behavior (hover, focus, click, dismiss, keyboard list navigation, ...)
// observes a shared [floating.Context] and contributes props — attributes
// and event handlers — through a [Descriptor]. [Compose] folds an ordered
// list of descriptors into three prop getters:
//
//	inter := interactions.Compose(
//	    interactions.Hover(ctx, nil),
//	    interactions.Dismiss(ctx, nil),
//	    interactions.Role(ctx, nil),
//	)
//	refProps := inter.ReferenceProps(interactions.Props{
//	    "onClick": interactions.Handler(func(e *interactions.Event) { ... }),
//	})
//
// # Merge rules
//
// Handler-shaped keys (the "on"-prefix convention: "onClick", "onKeyDown",
// ...) are never clobbered: every contribution is chained in registration
// order, the caller's own handler last, and the whole chain always runs —
// a handler calling [Event.PreventDefault] marks the event but does not
// stop later handlers, so side-effecting listeners coexist with user
// handlers that suppress default behavior.
//
// For every other key the last write wins: descriptors later in the list
// override earlier ones, and the caller's base props override them all.
// Overwrites are reported to the interaction observability hooks for
// optional diagnostics.
//
// A descriptor getter that panics is not caught — a malformed behavior
// surfaces immediately rather than being silently dropped.
package interactions
