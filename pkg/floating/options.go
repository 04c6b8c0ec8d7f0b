package floating

import (
	"github.com/charmbracelet/log"

	"github.com/perchui/perch/pkg/anchor"
	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/geo"
)

// WhileMountedFunc starts a continuous-update subscription for the given
// element pair and returns its cancel function. The controller guarantees it
// is only called with both elements present, that the previous subscription
// is canceled first, and that at most one subscription is live at a time.
//
// update triggers a position recomputation; implementations call it on
// every environmental change they observe.
type WhileMountedFunc func(reference, floating anchor.Element, update func()) anchor.CancelFunc

// WhileMounted adapts [anchor.AutoUpdate] to the controller's subscription
// contract. Pass nil options for the default polling cadence:
//
//	floating.NewController(floating.Options{
//	    WhileMounted: floating.WhileMounted(nil),
//	})
func WhileMounted(opts *anchor.AutoUpdateOptions) WhileMountedFunc {
	return func(reference, floating anchor.Element, update func()) anchor.CancelFunc {
		return anchor.AutoUpdate(reference, floating, update, opts)
	}
}

// Elements supplies externally managed elements, bypassing the [Refs]
// setters. A non-nil field takes precedence for that element: the
// corresponding setter becomes inert for the controller's lifetime.
type Elements struct {
	Reference anchor.Element
	Floating  anchor.Element
}

// Options configures a [Controller]. The zero value is usable: bottom
// placement, absolute strategy, no middleware, no continuous updates, no
// open tracking.
type Options struct {
	// Placement is the preferred placement. Empty means
	// [anchor.DefaultPlacement].
	Placement geo.Placement

	// Strategy selects the positioning strategy. Empty means
	// [anchor.DefaultStrategy].
	Strategy anchor.Strategy

	// Middleware is passed through to the engine in order.
	Middleware []anchor.Middleware

	// Boundary is the clipping rect for overflow-aware middleware.
	Boundary geo.Rect

	// Compute overrides the positioning engine. Nil means
	// [anchor.Compute].
	Compute anchor.ComputeFunc

	// WhileMounted, when set, keeps the position fresh while both
	// elements are present. Without it the position is computed exactly
	// once per relevant change.
	WhileMounted WhileMountedFunc

	// Elements supplies externally managed elements (see [Elements]).
	Elements Elements

	// TrackOpen gates computation on the open state: while closed,
	// recomputation is suppressed and IsPositioned reads false.
	TrackOpen bool

	// Open is the initial open state when TrackOpen is set.
	Open bool

	// OnOpenChange observes open-state transitions requested through
	// [Context.SetOpen]. Called outside the controller lock.
	OnOpenChange func(open bool, reason OpenReason)

	// OnChange is the render-invalidation callback: it fires after every
	// committed state change (position commit, open transition, element
	// change). Called outside the controller lock.
	OnChange func()

	// OnError receives asynchronous computation failures. Nil means the
	// failure is logged through Logger at error level.
	OnError func(error)

	// Transform controls whether [Controller.Styles] bakes the offsets
	// into the returned style (false) or leaves translation to the
	// overlay compositor (true).
	Transform bool

	// Logger used for diagnostics. Nil means [log.Default].
	Logger *log.Logger
}

// validate checks the option fields that admit invalid values.
func (o *Options) validate() error {
	if err := errors.ValidatePlacement(string(o.Placement)); err != nil {
		return err
	}
	if err := errors.ValidateStrategy(string(o.Strategy)); err != nil {
		return err
	}
	return nil
}
