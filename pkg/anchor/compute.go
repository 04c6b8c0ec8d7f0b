package anchor

import (
	"context"

	"github.com/perchui/perch/pkg/errors"
	"github.com/perchui/perch/pkg/geo"
)

// =============================================================================
// Configuration & Result
// =============================================================================

// Strategy selects how computed coordinates are interpreted at render time.
type Strategy string

// Valid strategies. Absolute positions are relative to the floating
// element's positioned ancestor; fixed positions are relative to the
// terminal viewport.
const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

// Defaults applied by Compute when the config leaves a field zero.
const (
	DefaultPlacement = geo.PlacementBottom
	DefaultStrategy  = StrategyAbsolute
)

// Config describes one position computation.
type Config struct {
	// Placement is the preferred placement. Middleware may land on a
	// different one (e.g. Flip). Empty means DefaultPlacement.
	Placement geo.Placement

	// Strategy selects the positioning strategy. Empty means
	// DefaultStrategy.
	Strategy Strategy

	// Middleware runs in order after the base coordinates are computed.
	Middleware []Middleware

	// Boundary is the clipping rectangle that overflow-aware middleware
	// (Shift, Flip) measures against. A zero rect means unbounded.
	Boundary geo.Rect
}

// Position is the result of one computation. It is replaced wholesale on
// every computation; callers never see partial updates.
type Position struct {
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Placement geo.Placement `json:"placement"`
	Strategy  Strategy      `json:"strategy"`

	// MiddlewareData holds per-middleware diagnostics, keyed by
	// middleware name.
	MiddlewareData map[string]any `json:"middleware_data,omitempty"`
}

// ComputeFunc is the engine contract consumed by the floating controller.
// Compute is the canonical implementation; tests and embedders may swap in
// their own.
type ComputeFunc func(ctx context.Context, reference, floating Element, cfg Config) (Position, error)

// CancelFunc tears down a continuous-update subscription. Safe to call more
// than once.
type CancelFunc func()

// =============================================================================
// Compute - Reference Engine
// =============================================================================

// maxResets bounds middleware-requested pipeline restarts so mutually
// antagonistic middleware cannot loop forever.
const maxResets = 5

// Compute calculates where the floating element should be placed relative
// to the reference element.
//
// The base coordinates attach the floating rect to the placement's side of
// the reference rect, aligned per the placement's alignment (centered when
// unaligned). Middleware then runs in order; a middleware may request a
// restart with a new placement (see [State.RequestReset]), which recomputes
// the base coordinates and reruns the pipeline from the beginning.
func Compute(ctx context.Context, reference, floating Element, cfg Config) (Position, error) {
	if reference == nil || floating == nil {
		return Position{}, errors.New(errors.ErrCodeNoElements, "both reference and floating elements are required")
	}

	placement := cfg.Placement
	if placement == "" {
		placement = DefaultPlacement
	}
	if !placement.Valid() {
		return Position{}, errors.New(errors.ErrCodeInvalidPlacement, "invalid placement %q", placement)
	}

	strategy := cfg.Strategy
	if strategy == "" {
		strategy = DefaultStrategy
	}
	if strategy != StrategyAbsolute && strategy != StrategyFixed {
		return Position{}, errors.New(errors.ErrCodeInvalidStrategy, "invalid strategy %q", strategy)
	}

	st := &State{
		Placement: placement,
		Strategy:  strategy,
		Reference: reference.BoundingRect(),
		Floating:  floating.BoundingRect(),
		Boundary:  cfg.Boundary,
		Data:      make(map[string]any),
	}
	st.X, st.Y = baseCoords(st.Reference, st.Floating, st.Placement)

	resets := 0
	for i := 0; i < len(cfg.Middleware); i++ {
		if err := ctx.Err(); err != nil {
			return Position{}, errors.Wrap(errors.ErrCodeCanceled, err, "position computation canceled")
		}

		mw := cfg.Middleware[i]
		if err := mw.Run(st); err != nil {
			return Position{}, errors.Wrap(errors.ErrCodeComputeFailed, err, "middleware %q failed", mw.Name())
		}

		if st.reset {
			st.reset = false
			resets++
			if resets > maxResets {
				return Position{}, errors.New(errors.ErrCodeComputeFailed, "middleware reset limit exceeded (placement %q)", st.Placement)
			}
			st.X, st.Y = baseCoords(st.Reference, st.Floating, st.Placement)
			i = -1 // rerun the pipeline from the start
		}
	}

	return Position{
		X:              st.X,
		Y:              st.Y,
		Placement:      st.Placement,
		Strategy:       st.Strategy,
		MiddlewareData: st.Data,
	}, nil
}

// baseCoords attaches the floating rect to one side of the reference rect.
func baseCoords(ref, fl geo.Rect, placement geo.Placement) (x, y float64) {
	commonX := ref.X + (ref.Width-fl.Width)/2
	commonY := ref.Y + (ref.Height-fl.Height)/2

	switch placement.Side() {
	case geo.SideTop:
		x, y = commonX, ref.Top()-fl.Height
	case geo.SideBottom:
		x, y = commonX, ref.Bottom()
	case geo.SideLeft:
		x, y = ref.Left()-fl.Width, commonY
	case geo.SideRight:
		x, y = ref.Right(), commonY
	}

	switch placement.Alignment() {
	case geo.AlignStart:
		if placement.Side().IsVertical() {
			x = ref.Left()
		} else {
			y = ref.Top()
		}
	case geo.AlignEnd:
		if placement.Side().IsVertical() {
			x = ref.Right() - fl.Width
		} else {
			y = ref.Bottom() - fl.Height
		}
	}

	return x, y
}
