package interactions

import (
	"strconv"

	"github.com/perchui/perch/pkg/floating"
)

// RoleOptions tunes the [Role] behavior.
type RoleOptions struct {
	// Role is the semantic role of the floating element: "dialog",
	// "tooltip", "menu", or "listbox". Defaults to "dialog".
	Role string
}

// Role contributes semantic attributes that link the reference and
// floating elements: stable ids, the floating element's role, and the
// reference's expanded/controls state. The attributes are plain string
// props, so they merge last-write-wins and re-read the open state on every
// composition. Pass nil options for the defaults.
func Role(ctx *floating.Context, opts *RoleOptions) Descriptor {
	role := "dialog"
	if opts != nil && opts.Role != "" {
		role = opts.Role
	}

	referenceID := "perch-ref-" + ctx.ID()
	floatingID := "perch-floating-" + ctx.ID()

	haspopup := role
	if role == "tooltip" {
		haspopup = "dialog"
	}

	return Descriptor{
		Reference: func(Props) Props {
			return Props{
				"id":            referenceID,
				"aria-haspopup": haspopup,
				"aria-expanded": strconv.FormatBool(ctx.Open()),
				"aria-controls": floatingID,
			}
		},
		Floating: func(Props) Props {
			return Props{
				"id":              floatingID,
				"role":            role,
				"aria-labelledby": referenceID,
			}
		},
	}
}
