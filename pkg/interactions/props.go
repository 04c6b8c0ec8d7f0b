package interactions

import (
	"github.com/perchui/perch/pkg/observability"
)

// =============================================================================
// Props
// =============================================================================

// Props is a string-keyed prop set for one element target. Values under
// "on"-prefixed keys are expected to be [Handler]s; everything else is an
// opaque attribute (role, id, aria-*, tabindex, ...).
type Props map[string]any

// Clone returns a shallow copy.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Handler returns the handler stored under key, or nil when the key is
// absent or holds a non-handler value.
func (p Props) Handler(key string) Handler {
	h, _ := p[key].(Handler)
	return h
}

// String returns the string stored under key, or "" when absent or of
// another type.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Dispatch invokes the handler stored under key with the event, if one is
// present. It reports whether a handler ran.
func (p Props) Dispatch(key string, e *Event) bool {
	h := p.Handler(key)
	if h == nil {
		return false
	}
	h(e)
	return true
}

// IsHandlerKey reports whether a prop key is event-handler-shaped per the
// "on"-prefix convention: "onClick" is, "once" and "on" are not.
func IsHandlerKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' &&
		key[2] >= 'A' && key[2] <= 'Z'
}

// =============================================================================
// Merging
// =============================================================================

// mergeProps folds an ordered list of contributions plus the caller's base
// props into one prop set for target.
//
// Handler-shaped keys chain every contribution in order with the base
// handler last; the chain never short-circuits, regardless of
// PreventDefault. Other keys are last-write-wins, base last; overwrites
// are reported to the interaction hooks.
func mergeProps(target string, contributions []Props, base Props) Props {
	merged := make(Props)
	chains := make(map[string][]Handler)
	var chainOrder []string

	fold := func(p Props) {
		for key, value := range p {
			if h, ok := value.(Handler); ok && IsHandlerKey(key) {
				if h == nil {
					continue
				}
				if _, seen := chains[key]; !seen {
					chainOrder = append(chainOrder, key)
				}
				chains[key] = append(chains[key], h)
				continue
			}
			if _, exists := merged[key]; exists {
				observability.Interaction().OnPropCollision(target, key)
			}
			merged[key] = value
		}
	}

	for _, contribution := range contributions {
		fold(contribution)
	}
	fold(base)

	for _, key := range chainOrder {
		chain := chains[key]
		observability.Interaction().OnHandlerChain(target, key, len(chain))
		if len(chain) == 1 {
			merged[key] = chain[0]
			continue
		}
		merged[key] = composeHandlers(chain)
	}

	return merged
}

// composeHandlers chains handlers so each runs in registration order with
// the same event. PreventDefault aggregates on the event; it never stops
// the chain.
func composeHandlers(chain []Handler) Handler {
	return func(e *Event) {
		for _, h := range chain {
			h(e)
		}
	}
}
