package interactions

import (
	"sync"
	"time"

	"github.com/perchui/perch/pkg/floating"
)

// DataOpenEvent is the side-channel key behaviors write the triggering
// input modality under ("mouse", "keyboard", "focus"). Readers tolerate it
// being overwritten by whichever behavior opened last.
const DataOpenEvent = "perch:openEvent"

// HoverOptions tunes the [Hover] behavior. The zero value opens and closes
// immediately and keeps the element open while the pointer is over the
// floating element.
type HoverOptions struct {
	// OpenDelay postpones opening after the pointer enters the reference.
	OpenDelay time.Duration

	// CloseDelay postpones closing after the pointer leaves, giving the
	// user time to reach the floating element.
	CloseDelay time.Duration

	// IgnoreFloating closes even while the pointer is over the floating
	// element.
	IgnoreFloating bool

	// Disabled turns the behavior off without recomposing.
	Disabled bool
}

type hoverBehavior struct {
	ctx  *floating.Context
	opts HoverOptions

	mu         sync.Mutex
	openTimer  *time.Timer
	closeTimer *time.Timer
}

// Hover opens the floating element while the pointer rests over the
// reference and closes it when the pointer leaves both elements. Delays
// debounce flyby traversals. Pass nil options for the defaults.
func Hover(ctx *floating.Context, opts *HoverOptions) Descriptor {
	h := &hoverBehavior{ctx: ctx}
	if opts != nil {
		h.opts = *opts
	}

	return Descriptor{
		Reference: func(Props) Props {
			if h.opts.Disabled {
				return nil
			}
			return Props{
				"onMouseEnter": Handler(h.referenceEnter),
				"onMouseLeave": Handler(h.leave),
			}
		},
		Floating: func(Props) Props {
			if h.opts.Disabled || h.opts.IgnoreFloating {
				return nil
			}
			return Props{
				"onMouseEnter": Handler(h.floatingEnter),
				"onMouseLeave": Handler(h.leave),
			}
		},
	}
}

func (h *hoverBehavior) referenceEnter(*Event) {
	h.mu.Lock()
	h.stopLocked(&h.closeTimer)
	if h.opts.OpenDelay > 0 {
		h.stopLocked(&h.openTimer)
		h.openTimer = time.AfterFunc(h.opts.OpenDelay, h.open)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	h.open()
}

func (h *hoverBehavior) floatingEnter(*Event) {
	// Reaching the floating element keeps it open.
	h.mu.Lock()
	h.stopLocked(&h.closeTimer)
	h.mu.Unlock()
}

func (h *hoverBehavior) leave(*Event) {
	h.mu.Lock()
	h.stopLocked(&h.openTimer)
	if h.opts.CloseDelay > 0 {
		h.stopLocked(&h.closeTimer)
		h.closeTimer = time.AfterFunc(h.opts.CloseDelay, h.close)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	h.close()
}

func (h *hoverBehavior) open() {
	h.ctx.Data().Set(DataOpenEvent, "mouse")
	h.ctx.SetOpen(true, floating.ReasonHover)
}

func (h *hoverBehavior) close() {
	h.ctx.SetOpen(false, floating.ReasonHover)
}

func (h *hoverBehavior) stopLocked(t **time.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
