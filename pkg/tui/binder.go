package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/perchui/perch/pkg/floating"
)

// =============================================================================
// Messages
// =============================================================================

// PositionMsg reports a committed position change. The styles are a
// snapshot taken at commit time; models may also re-read
// [floating.Controller.Styles] directly.
type PositionMsg struct {
	Styles floating.Styles
}

// OpenMsg reports an open-state transition.
type OpenMsg struct {
	Open   bool
	Reason floating.OpenReason
}

// =============================================================================
// Binder
// =============================================================================

// Binder adapts a controller's callbacks into tea messages. Wire its
// methods into [floating.Options] and bind the controller afterwards:
//
//	b := tui.NewBinder()
//	c, err := floating.NewController(floating.Options{
//	    OnChange:     b.Invalidate,
//	    OnOpenChange: b.OpenChanged,
//	})
//	b.Bind(c)
//
// then keep a b.Listen() command pending from Init and from every receipt
// of a binder message. Notifications are coalesced: when the program is
// slow to drain them, intermediate position snapshots are dropped in favor
// of the latest state, which models re-read anyway.
type Binder struct {
	mu sync.Mutex
	c  *floating.Controller
	ch chan tea.Msg
}

// NewBinder returns an unbound binder.
func NewBinder() *Binder {
	return &Binder{ch: make(chan tea.Msg, 16)}
}

// Bind attaches the controller whose styles Invalidate snapshots.
func (b *Binder) Bind(c *floating.Controller) {
	b.mu.Lock()
	b.c = c
	b.mu.Unlock()
}

// Invalidate is the [floating.Options.OnChange] adapter.
func (b *Binder) Invalidate() {
	b.mu.Lock()
	c := b.c
	b.mu.Unlock()
	if c == nil {
		return
	}
	b.send(PositionMsg{Styles: c.Styles()})
}

// OpenChanged is the [floating.Options.OnOpenChange] adapter.
func (b *Binder) OpenChanged(open bool, reason floating.OpenReason) {
	b.send(OpenMsg{Open: open, Reason: reason})
}

// Listen returns a command that delivers the next binder message. Re-issue
// it after each delivery.
func (b *Binder) Listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Close releases pending Listen commands. Call after the controller is
// closed; the binder must not be invalidated afterwards.
func (b *Binder) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch != nil {
		close(b.ch)
		b.ch = nil
	}
}

func (b *Binder) send(msg tea.Msg) {
	// Non-blocking, so holding the lock here is fine and keeps the send
	// ordered against Close.
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch == nil {
		return
	}
	select {
	case b.ch <- msg:
	default:
	}
}
