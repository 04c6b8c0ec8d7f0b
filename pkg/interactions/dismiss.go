package interactions

import "github.com/perchui/perch/pkg/floating"

// DismissOptions tunes the [Dismiss] behavior. The zero value closes on
// escape and on presses outside both elements.
type DismissOptions struct {
	// NoEscapeKey disables closing on the escape key.
	NoEscapeKey bool

	// NoOutsidePress disables closing on presses outside both elements.
	NoOutsidePress bool

	// ReferencePress also closes when the reference itself is pressed.
	// Off by default so Dismiss composes with [Click] toggling.
	ReferencePress bool

	// Disabled turns the behavior off without recomposing.
	Disabled bool
}

// Dismiss closes an open floating element on escape, on presses outside
// both elements, and optionally on reference presses. Pass nil options for
// the defaults.
func Dismiss(ctx *floating.Context, opts *DismissOptions) Descriptor {
	var o DismissOptions
	if opts != nil {
		o = *opts
	}

	closeAs := func(reason floating.OpenReason) {
		if ctx.Open() {
			ctx.SetOpen(false, reason)
		}
	}

	escape := Handler(func(e *Event) {
		if o.NoEscapeKey || e.Key != "esc" {
			return
		}
		e.PreventDefault()
		closeAs(floating.ReasonEscapeKey)
	})

	return Descriptor{
		Reference: func(Props) Props {
			if o.Disabled {
				return nil
			}
			p := Props{"onKeyDown": escape}
			if o.ReferencePress {
				p["onClick"] = Handler(func(*Event) {
					closeAs(floating.ReasonReferencePress)
				})
			}
			return p
		},
		Floating: func(Props) Props {
			if o.Disabled {
				return nil
			}
			return Props{
				"onKeyDown": escape,
				"onOutsidePress": Handler(func(*Event) {
					if o.NoOutsidePress {
						return
					}
					closeAs(floating.ReasonOutsidePress)
				}),
			}
		},
	}
}
