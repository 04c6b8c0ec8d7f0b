package interactions

// =============================================================================
// Event
// =============================================================================

// Event types dispatched through merged props. The tui package translates
// framework messages into these; tests construct them directly.
const (
	EventClick        = "click"
	EventKeyDown      = "keydown"
	EventFocus        = "focus"
	EventBlur         = "blur"
	EventMouseEnter   = "mouseenter"
	EventMouseLeave   = "mouseleave"
	EventMouseMove    = "mousemove"
	EventOutsidePress = "outsidepress"
)

// Handler is an event handler contributed under an "on"-prefixed prop key.
type Handler func(*Event)

// Event is the single event object passed through a composed handler
// chain. Every handler in the chain sees the same instance, so flags set
// by one handler are visible to the rest — but never stop them.
type Event struct {
	// Type is one of the Event* constants.
	Type string

	// Key carries the key string for keyboard events ("enter", "esc",
	// "up", ...), empty otherwise.
	Key string

	// X, Y carry the cell position for mouse events.
	X, Y int

	// Msg is the underlying framework message, when the event was
	// translated from one. May be nil.
	Msg any

	defaultPrevented bool
}

// PreventDefault marks the event so the triggering input's default
// behavior is suppressed. It does not stop the handler chain.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether any handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
