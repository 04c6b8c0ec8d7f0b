package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/perchui/perch/pkg/geo"
	"github.com/perchui/perch/pkg/interactions"
)

// EventFromMsg translates a tea message into an interaction event. It
// reports false for messages with no event mapping (window sizes, custom
// messages, mouse wheel).
func EventFromMsg(msg tea.Msg) (*interactions.Event, bool) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return &interactions.Event{
			Type: interactions.EventKeyDown,
			Key:  m.String(),
			Msg:  msg,
		}, true
	case tea.MouseMsg:
		e := &interactions.Event{X: m.X, Y: m.Y, Msg: msg}
		switch {
		case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
			e.Type = interactions.EventClick
		case m.Action == tea.MouseActionMotion:
			e.Type = interactions.EventMouseMove
		default:
			return nil, false
		}
		return e, true
	default:
		return nil, false
	}
}

// =============================================================================
// Dispatcher
// =============================================================================

// Dispatcher routes translated events to the merged prop sets by
// hit-testing the element rects. It tracks which element the pointer is
// over between messages so it can synthesize enter/leave transitions,
// which terminals do not report.
//
// A Dispatcher belongs to one model; it is not safe for concurrent use.
type Dispatcher struct {
	// Reference and Floating report the current element rects in screen
	// cells. Floating is only consulted while Open reports true.
	Reference func() geo.Rect
	Floating  func() geo.Rect

	// Open reports whether the floating element is showing. Keys route to
	// the floating element while open, to the reference otherwise.
	Open func() bool

	overReference bool
	overFloating  bool
}

// Dispatch translates msg and routes it. It returns the event it
// dispatched, if any, so callers can inspect DefaultPrevented before
// applying their own default handling.
func (d *Dispatcher) Dispatch(msg tea.Msg, reference, floating interactions.Props) *interactions.Event {
	e, ok := EventFromMsg(msg)
	if !ok {
		return nil
	}

	open := d.open()

	switch e.Type {
	case interactions.EventKeyDown:
		if open {
			floating.Dispatch("onKeyDown", e)
		} else {
			reference.Dispatch("onKeyDown", e)
		}
		return e

	case interactions.EventMouseMove:
		d.trackHover(e, reference, floating, open)
		return e

	case interactions.EventClick:
		// A press is also a pointer position report.
		d.trackHover(e, reference, floating, open)
		switch {
		case d.overReference:
			reference.Dispatch("onClick", e)
		case d.overFloating:
			floating.Dispatch("onClick", e)
		case open:
			out := &interactions.Event{
				Type: interactions.EventOutsidePress,
				X:    e.X, Y: e.Y,
				Msg: e.Msg,
			}
			floating.Dispatch("onOutsidePress", out)
			return out
		}
		return e
	}
	return e
}

func (d *Dispatcher) open() bool {
	return d.Open != nil && d.Open()
}

// trackHover updates the over-element state and fires enter/leave
// transitions. Leaves fire before enters so a direct traversal between
// the elements never reads as hovering neither.
func (d *Dispatcher) trackHover(e *interactions.Event, reference, floating interactions.Props, open bool) {
	x, y := float64(e.X), float64(e.Y)

	overRef := d.Reference != nil && d.Reference().Contains(x, y)
	overFloat := open && d.Floating != nil && d.Floating().Contains(x, y)
	if overRef && overFloat {
		// Floating element renders on top.
		overRef = false
	}

	if d.overReference && !overRef {
		reference.Dispatch("onMouseLeave", d.derive(e, interactions.EventMouseLeave))
	}
	if d.overFloating && !overFloat {
		floating.Dispatch("onMouseLeave", d.derive(e, interactions.EventMouseLeave))
	}
	if overRef && !d.overReference {
		reference.Dispatch("onMouseEnter", d.derive(e, interactions.EventMouseEnter))
	}
	if overFloat && !d.overFloating {
		floating.Dispatch("onMouseEnter", d.derive(e, interactions.EventMouseEnter))
	}

	d.overReference = overRef
	d.overFloating = overFloat
}

func (d *Dispatcher) derive(e *interactions.Event, typ string) *interactions.Event {
	return &interactions.Event{Type: typ, X: e.X, Y: e.Y, Msg: e.Msg}
}
