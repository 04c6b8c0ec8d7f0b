package interactions

// =============================================================================
// Descriptor - Behavior Capability Record
// =============================================================================

// PropsFunc produces a behavior's prop contribution for one target. The
// base props the caller intends to merge are passed in for inspection;
// implementations must treat them as read-only and must not carry state
// between calls, so repeated invocation with different bases stays safe.
type PropsFunc func(base Props) Props

// ItemState carries the per-item parameters threaded through
// [Interactions.ItemProps].
type ItemState struct {
	// Index is the item's position in the list.
	Index int

	// Active marks the item currently targeted by keyboard navigation.
	Active bool

	// Selected marks the item reflected as the current selection.
	Selected bool
}

// ItemPropsFunc produces a behavior's prop contribution for one list item.
type ItemPropsFunc func(base Props, st ItemState) Props

// Descriptor is one behavior's contribution: an optional getter per
// target. A nil field means the behavior has nothing to say about that
// target. Descriptors are capability records, not interfaces — behaviors
// stay independently authored and openly extensible.
type Descriptor struct {
	Reference PropsFunc
	Floating  PropsFunc
	Item      ItemPropsFunc
}

// =============================================================================
// Composer
// =============================================================================

// Target names used in observability hook events.
const (
	targetReference = "reference"
	targetFloating  = "floating"
	targetItem      = "item"
)

// Interactions merges an ordered list of behavior descriptors into prop
// getters for the three element targets. Create one with [Compose].
//
// The getters are deterministic: the same descriptor list and base props
// always produce handler chains invoking the same functions in the same
// order. A descriptor getter that panics propagates to the caller.
type Interactions struct {
	descriptors []Descriptor
}

// Compose builds an Interactions over descriptors, preserving order —
// order is meaningful: later descriptors' non-handler props override
// earlier ones', and their handlers run later in each chain.
func Compose(descriptors ...Descriptor) *Interactions {
	return &Interactions{descriptors: descriptors}
}

// ReferenceProps merges every behavior's reference contribution with the
// caller's base props. The base may be nil.
func (i *Interactions) ReferenceProps(base Props) Props {
	contributions := make([]Props, 0, len(i.descriptors))
	for _, d := range i.descriptors {
		if d.Reference == nil {
			continue
		}
		contributions = append(contributions, d.Reference(base))
	}
	return mergeProps(targetReference, contributions, base)
}

// FloatingProps merges every behavior's floating contribution with the
// caller's base props. The base may be nil.
func (i *Interactions) FloatingProps(base Props) Props {
	contributions := make([]Props, 0, len(i.descriptors))
	for _, d := range i.descriptors {
		if d.Floating == nil {
			continue
		}
		contributions = append(contributions, d.Floating(base))
	}
	return mergeProps(targetFloating, contributions, base)
}

// ItemProps merges every behavior's item contribution for one list item,
// threading the item state to each. The base may be nil.
func (i *Interactions) ItemProps(base Props, st ItemState) Props {
	contributions := make([]Props, 0, len(i.descriptors))
	for _, d := range i.descriptors {
		if d.Item == nil {
			continue
		}
		contributions = append(contributions, d.Item(base, st))
	}
	return mergeProps(targetItem, contributions, base)
}
