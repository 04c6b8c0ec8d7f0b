package interactions

import (
	"strconv"

	"github.com/perchui/perch/pkg/floating"
)

// DataActiveIndex is the side-channel key [ListNavigation] stores the
// active item index under. -1 (or absence) means no item is active.
const DataActiveIndex = "listnav:activeIndex"

// ListNavOptions tunes the [ListNavigation] behavior. The zero value
// navigates a vertical list with clamped ends.
type ListNavOptions struct {
	// Loop wraps navigation past either end of the list.
	Loop bool

	// Horizontal navigates with left/right instead of up/down.
	Horizontal bool

	// OpenOnArrow opens a closed element when a navigation key is pressed
	// on the reference, landing on the first (or last, navigating
	// backward) item.
	OpenOnArrow bool

	// Disabled turns the behavior off without recomposing.
	Disabled bool
}

type listNav struct {
	ctx        *floating.Context
	count      func() int
	onNavigate func(index int)
	opts       ListNavOptions
}

// ListNavigation drives keyboard navigation over the floating element's
// item list. count reports the current list length; onNavigate, if
// non-nil, is called with each newly active index. The active index lives
// in the context's [floating.Data] under [DataActiveIndex] so item getters
// and application code read the same value. Pass nil options for the
// defaults.
func ListNavigation(ctx *floating.Context, count func() int, onNavigate func(index int), opts *ListNavOptions) Descriptor {
	n := &listNav{ctx: ctx, count: count, onNavigate: onNavigate}
	if opts != nil {
		n.opts = *opts
	}

	return Descriptor{
		Reference: func(Props) Props {
			if n.opts.Disabled {
				return nil
			}
			return Props{"onKeyDown": Handler(n.referenceKey)}
		},
		Floating: func(Props) Props {
			if n.opts.Disabled {
				return nil
			}
			p := Props{"onKeyDown": Handler(n.floatingKey)}
			if active := n.ctx.Data().GetInt(DataActiveIndex); active >= 0 {
				p["aria-activedescendant"] = n.itemID(active)
			}
			return p
		},
		Item: func(_ Props, st ItemState) Props {
			if n.opts.Disabled {
				return nil
			}
			index := st.Index
			p := Props{
				"id":            n.itemID(index),
				"aria-selected": strconv.FormatBool(st.Selected),
				"onMouseEnter": Handler(func(*Event) {
					n.activate(index)
				}),
			}
			if st.Active {
				p["tabindex"] = "0"
			} else {
				p["tabindex"] = "-1"
			}
			return p
		},
	}
}

func (n *listNav) itemID(index int) string {
	return "perch-item-" + n.ctx.ID() + "-" + strconv.Itoa(index)
}

func (n *listNav) keyDelta(key string) (int, bool) {
	next, prev := "down", "up"
	if n.opts.Horizontal {
		next, prev = "right", "left"
	}
	switch key {
	case next:
		return 1, true
	case prev:
		return -1, true
	default:
		return 0, false
	}
}

func (n *listNav) referenceKey(e *Event) {
	delta, ok := n.keyDelta(e.Key)
	if !ok {
		return
	}
	if !n.ctx.Open() {
		if !n.opts.OpenOnArrow {
			return
		}
		e.PreventDefault()
		count := n.count()
		if count == 0 {
			return
		}
		index := 0
		if delta < 0 {
			index = count - 1
		}
		n.ctx.Data().Set(DataOpenEvent, "keyboard")
		n.ctx.SetOpen(true, floating.ReasonListNavigation)
		n.activate(index)
		return
	}
	e.PreventDefault()
	n.step(delta)
}

func (n *listNav) floatingKey(e *Event) {
	delta, ok := n.keyDelta(e.Key)
	if !ok || !n.ctx.Open() {
		return
	}
	e.PreventDefault()
	n.step(delta)
}

func (n *listNav) step(delta int) {
	count := n.count()
	if count == 0 {
		return
	}
	index := n.ctx.Data().GetInt(DataActiveIndex)
	if index < 0 {
		// First navigation lands on an end rather than stepping.
		if delta > 0 {
			n.activate(0)
		} else {
			n.activate(count - 1)
		}
		return
	}
	index += delta
	switch {
	case n.opts.Loop:
		index = ((index % count) + count) % count
	case index < 0:
		index = 0
	case index >= count:
		index = count - 1
	}
	n.activate(index)
}

func (n *listNav) activate(index int) {
	n.ctx.Data().Set(DataActiveIndex, index)
	if n.onNavigate != nil {
		n.onNavigate(index)
	}
}
