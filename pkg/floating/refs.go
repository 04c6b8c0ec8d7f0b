package floating

import (
	"github.com/perchui/perch/pkg/anchor"
)

// =============================================================================
// Refs - Reference Store
// =============================================================================

// Refs is the reference store: callback-style setters plus read handles for
// the controller's elements. Assignment through a setter is observable — it
// invalidates in-flight computations, restarts the continuous-update
// subscription when needed, and triggers recomputation — which is why the
// store exposes setters rather than bare mutable handles.
//
// Reads always reflect the latest set values, including mid-render.
type Refs struct {
	c *Controller
}

// SetReference assigns the reference element (the event-handling anchor,
// and the geometric anchor unless a position reference is set separately).
// Setting the same element again is a no-op. Inert when the reference was
// supplied externally through [Options.Elements].
func (r *Refs) SetReference(el anchor.Element) {
	r.c.setReference(el)
}

// SetPositionReference assigns the geometric anchor independently of the
// event-handling reference. Pass nil to fall back to the reference element.
func (r *Refs) SetPositionReference(el anchor.Element) {
	r.c.setPositionReference(el)
}

// SetFloating assigns the floating element. Setting the same element again
// is a no-op. Inert when the floating element was supplied externally
// through [Options.Elements].
func (r *Refs) SetFloating(el anchor.Element) {
	r.c.setFloating(el)
}

// Reference returns the current event-handling reference element.
func (r *Refs) Reference() anchor.Element {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.reference
}

// PositionReference returns the current geometric anchor: the explicitly
// set position reference, or the reference element when none is set.
func (r *Refs) PositionReference() anchor.Element {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.effectivePositionRefLocked()
}

// Floating returns the current floating element.
func (r *Refs) Floating() anchor.Element {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.floatingEl
}

// sameElement reports whether two elements are the same instance.
// Comparison is interface identity; implementations with uncomparable
// dynamic types are treated as always-new.
func sameElement(a, b anchor.Element) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
