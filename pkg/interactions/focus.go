package interactions

import "github.com/perchui/perch/pkg/floating"

// FocusOptions tunes the [Focus] behavior.
type FocusOptions struct {
	// Disabled turns the behavior off without recomposing.
	Disabled bool
}

// Focus opens the floating element while the reference holds keyboard
// focus and closes it on blur. Pass nil options for the defaults.
func Focus(ctx *floating.Context, opts *FocusOptions) Descriptor {
	var o FocusOptions
	if opts != nil {
		o = *opts
	}

	return Descriptor{
		Reference: func(Props) Props {
			if o.Disabled {
				return nil
			}
			return Props{
				"onFocus": Handler(func(*Event) {
					ctx.Data().Set(DataOpenEvent, "focus")
					ctx.SetOpen(true, floating.ReasonFocus)
				}),
				"onBlur": Handler(func(*Event) {
					ctx.SetOpen(false, floating.ReasonFocus)
				}),
			}
		},
	}
}
