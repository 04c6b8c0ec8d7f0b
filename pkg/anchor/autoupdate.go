package anchor

import (
	"sync"
	"time"
)

// =============================================================================
// AutoUpdate - Continuous-Update Subscription
// =============================================================================

// DefaultUpdateInterval is the rect-polling cadence used when
// AutoUpdateOptions leaves Interval zero. Terminal reflows are driven by
// resize and content changes, so a coarse interval is plenty.
const DefaultUpdateInterval = 75 * time.Millisecond

// AutoUpdateOptions tunes an AutoUpdate subscription.
type AutoUpdateOptions struct {
	// Interval is the polling cadence. Zero means DefaultUpdateInterval.
	Interval time.Duration

	// SkipInitial suppresses the immediate onUpdate call that otherwise
	// fires as soon as the subscription starts.
	SkipInitial bool
}

// AutoUpdate invokes onUpdate whenever either element's bounding rect
// changes, polling at the configured interval, until the returned cancel
// function is called. Unless SkipInitial is set, onUpdate fires once
// immediately so the subscriber starts from fresh coordinates.
//
// A nil reference or floating element makes the subscription a no-op: the
// returned cancel is still valid, but nothing is polled. Absent elements
// are a normal transient state during mount/unmount, not an error.
//
// The cancel function is idempotent and safe to call from any goroutine.
// After cancel returns, no further onUpdate calls are made.
func AutoUpdate(reference, floating Element, onUpdate func(), opts *AutoUpdateOptions) CancelFunc {
	if reference == nil || floating == nil || onUpdate == nil {
		return func() {}
	}

	interval := DefaultUpdateInterval
	skipInitial := false
	if opts != nil {
		if opts.Interval > 0 {
			interval = opts.Interval
		}
		skipInitial = opts.SkipInitial
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		if !skipInitial {
			select {
			case <-stop:
				return
			default:
				onUpdate()
			}
		}

		lastRef := reference.BoundingRect()
		lastFloat := floating.BoundingRect()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ref := reference.BoundingRect()
				fl := floating.BoundingRect()
				if ref != lastRef || fl != lastFloat {
					lastRef, lastFloat = ref, fl
					onUpdate()
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done // no onUpdate calls after cancel returns
		})
	}
}
