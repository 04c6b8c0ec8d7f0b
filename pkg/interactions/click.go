package interactions

import "github.com/perchui/perch/pkg/floating"

// ClickOptions tunes the [Click] behavior. The zero value toggles on
// activation and accepts keyboard activation.
type ClickOptions struct {
	// NoToggle keeps the element open on repeated activation instead of
	// closing it.
	NoToggle bool

	// IgnoreKeyboard disables enter/space activation.
	IgnoreKeyboard bool

	// Disabled turns the behavior off without recomposing.
	Disabled bool
}

// Click toggles the floating element when the reference is activated by a
// pointer press or, unless disabled, by enter or space. Pass nil options
// for the defaults.
func Click(ctx *floating.Context, opts *ClickOptions) Descriptor {
	var o ClickOptions
	if opts != nil {
		o = *opts
	}

	activate := func(event string) {
		if ctx.Open() {
			if !o.NoToggle {
				ctx.SetOpen(false, floating.ReasonClick)
			}
			return
		}
		ctx.Data().Set(DataOpenEvent, event)
		ctx.SetOpen(true, floating.ReasonClick)
	}

	return Descriptor{
		Reference: func(Props) Props {
			if o.Disabled {
				return nil
			}
			return Props{
				"onClick": Handler(func(*Event) {
					activate("mouse")
				}),
				"onKeyDown": Handler(func(e *Event) {
					if o.IgnoreKeyboard {
						return
					}
					if e.Key == "enter" || e.Key == " " {
						e.PreventDefault()
						activate("keyboard")
					}
				}),
			}
		},
	}
}
