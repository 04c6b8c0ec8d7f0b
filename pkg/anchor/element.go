package anchor

import "github.com/perchui/perch/pkg/geo"

// =============================================================================
// Element - Positioning Target
// =============================================================================

// Element is anything a floating element can be positioned against, or that
// can itself be positioned. Implementations report their current bounding
// rectangle in cell coordinates.
//
// BoundingRect is called on every position computation and on every
// continuous-update poll, so it should be cheap.
type Element interface {
	BoundingRect() geo.Rect
}

// ContextHolder is an optional extension of Element for virtual targets
// that are logically attached to a real component (e.g. a cursor position
// inside a text area). The engine itself ignores the context element;
// continuous-update subscriptions may observe it instead of the virtual
// rect when deciding what "mounted" means.
type ContextHolder interface {
	Element

	// ContextElement returns the real element this virtual target belongs
	// to, or nil.
	ContextElement() Element
}

// =============================================================================
// Virtual - Function-Backed Target
// =============================================================================

// Virtual is a positioning target with no backing component. The rect
// function is consulted on every computation, so a Virtual can track a
// moving anchor (mouse cursor, text caret) without any re-registration.
type Virtual struct {
	// Rect produces the current bounding rectangle. Required.
	Rect func() geo.Rect

	// Context optionally names the real element the virtual target lives
	// in. May be nil.
	Context Element
}

// BoundingRect implements Element.
func (v *Virtual) BoundingRect() geo.Rect {
	if v.Rect == nil {
		return geo.Rect{}
	}
	return v.Rect()
}

// ContextElement implements ContextHolder.
func (v *Virtual) ContextElement() Element { return v.Context }

// =============================================================================
// Static - Fixed-Rect Target
// =============================================================================

// Static is an Element with a fixed bounding rectangle. Useful in tests and
// for anchoring against screen regions that do not move.
type Static struct {
	Rect geo.Rect
}

// BoundingRect implements Element.
func (s Static) BoundingRect() geo.Rect { return s.Rect }
