package floating

import (
	"sync"

	"github.com/perchui/perch/pkg/anchor"
)

// =============================================================================
// OpenReason
// =============================================================================

// OpenReason names what caused an open-state transition. Behaviors report
// the reason through [Context.SetOpen]; it flows to
// [Options.OnOpenChange].
type OpenReason string

// Known reasons. Behaviors outside this package may define their own.
const (
	ReasonAPI            OpenReason = "api"
	ReasonHover          OpenReason = "hover"
	ReasonFocus          OpenReason = "focus"
	ReasonClick          OpenReason = "click"
	ReasonEscapeKey      OpenReason = "escape-key"
	ReasonOutsidePress   OpenReason = "outside-press"
	ReasonReferencePress OpenReason = "reference-press"
	ReasonListNavigation OpenReason = "list-navigation"
)

// =============================================================================
// Context - Shared Behavior Context
// =============================================================================

// Context is the stable object shared with every interaction behavior
// attached to one controller. Its identity never changes for the
// controller's lifetime, so behaviors can safely hold it; the values it
// exposes are read live from the controller.
type Context struct {
	c    *Controller
	id   string
	data *Data
}

// ID returns a unique identifier for this controller instance, suitable
// for correlating accessibility attributes across reference, floating,
// and item props.
func (ctx *Context) ID() string { return ctx.id }

// Refs returns the reference store.
func (ctx *Context) Refs() *Refs { return &ctx.c.refs }

// Reference returns the current event-handling reference element.
func (ctx *Context) Reference() anchor.Element { return ctx.c.refs.Reference() }

// PositionReference returns the current geometric anchor.
func (ctx *Context) PositionReference() anchor.Element { return ctx.c.refs.PositionReference() }

// Floating returns the current floating element.
func (ctx *Context) Floating() anchor.Element { return ctx.c.refs.Floating() }

// Open reports the current open state.
func (ctx *Context) Open() bool {
	ctx.c.mu.Lock()
	defer ctx.c.mu.Unlock()
	return ctx.c.open
}

// SetOpen transitions the open state, reporting why. Transitions to the
// current state are no-ops. With [Options.TrackOpen], closing suppresses
// recomputation and resets IsPositioned; opening schedules a fresh
// computation.
func (ctx *Context) SetOpen(open bool, reason OpenReason) {
	ctx.c.setOpen(open, reason)
}

// Position returns the last committed position.
func (ctx *Context) Position() anchor.Position { return ctx.c.Position() }

// IsPositioned reports whether a position has been committed since the
// elements (and, with TrackOpen, the open state) last became ready.
func (ctx *Context) IsPositioned() bool { return ctx.c.IsPositioned() }

// Data returns the cross-behavior side channel.
func (ctx *Context) Data() *Data { return ctx.data }

// =============================================================================
// Data - Non-Reactive Side Channel
// =============================================================================

// Data is a mutable cell shared by all behaviors attached to one
// controller. Writes are visible to every holder of the context but never
// trigger change notification — it is the explicit escape hatch for
// high-frequency, render-irrelevant signals (e.g. which input modality
// opened the element).
//
// Keys are last-write-wins; behaviors namespace them by convention
// ("perch:openEvent", "listnav:activeIndex") to avoid collisions.
type Data struct {
	mu sync.RWMutex
	m  map[string]any
}

func newData() *Data {
	return &Data{m: make(map[string]any)}
}

// Get returns the value stored under key, if any.
func (d *Data) Get(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.m[key]
	return v, ok
}

// Set stores a value under key, replacing any previous value.
func (d *Data) Set(key string, value any) {
	d.mu.Lock()
	d.m[key] = value
	d.mu.Unlock()
}

// Delete removes key.
func (d *Data) Delete(key string) {
	d.mu.Lock()
	delete(d.m, key)
	d.mu.Unlock()
}

// GetString returns the string stored under key, or "" when absent or of
// another type.
func (d *Data) GetString(key string) string {
	v, ok := d.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetInt returns the int stored under key, or -1 when absent or of another
// type.
func (d *Data) GetInt(key string) int {
	v, ok := d.Get(key)
	if !ok {
		return -1
	}
	n, ok := v.(int)
	if !ok {
		return -1
	}
	return n
}

// GetBool returns the bool stored under key, or false when absent or of
// another type.
func (d *Data) GetBool(key string) bool {
	v, ok := d.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
