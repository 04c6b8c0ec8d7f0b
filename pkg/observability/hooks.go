// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about position computation, continuous-update subscriptions,
// and interaction prop merging.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPositionHooks(&myPositionHooks{})
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Position().OnComputeStart(seq, placement)
//	// ... compute ...
//	observability.Position().OnComputeComplete(seq, placement, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Position Hooks
// =============================================================================

// PositionHooks receives events from the position engine adapter.
// The seq argument is the monotonic request token assigned to each
// computation; discarded results report the sequence that superseded them.
type PositionHooks interface {
	// OnComputeStart records the start of an asynchronous position computation.
	OnComputeStart(seq uint64, placement string)

	// OnComputeComplete records a finished computation, successful or not.
	OnComputeComplete(seq uint64, placement string, duration time.Duration, err error)

	// OnResultDiscarded records a stale result dropped because a newer
	// request (latest) superseded it, or because the controller detached.
	OnResultDiscarded(seq, latest uint64)
}

// =============================================================================
// Subscription Hooks
// =============================================================================

// SubscriptionHooks receives events from the continuous-update lifecycle
// subscriber.
type SubscriptionHooks interface {
	// OnSubscribe records the start of a continuous-update subscription.
	OnSubscribe()

	// OnCancel records the teardown of a continuous-update subscription.
	OnCancel()
}

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events from the interaction prop composer.
type InteractionHooks interface {
	// OnPropCollision records a non-handler prop key overwritten during
	// merging. Merge order is unaffected; this is purely diagnostic.
	OnPropCollision(target, key string)

	// OnHandlerChain records the length of a composed handler chain.
	OnHandlerChain(target, key string, length int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPositionHooks is a no-op implementation of PositionHooks.
type NoopPositionHooks struct{}

func (NoopPositionHooks) OnComputeStart(uint64, string)                          {}
func (NoopPositionHooks) OnComputeComplete(uint64, string, time.Duration, error) {}
func (NoopPositionHooks) OnResultDiscarded(uint64, uint64)                       {}

// NoopSubscriptionHooks is a no-op implementation of SubscriptionHooks.
type NoopSubscriptionHooks struct{}

func (NoopSubscriptionHooks) OnSubscribe() {}
func (NoopSubscriptionHooks) OnCancel()    {}

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnPropCollision(string, string)     {}
func (NoopInteractionHooks) OnHandlerChain(string, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	positionHooks     PositionHooks     = NoopPositionHooks{}
	subscriptionHooks SubscriptionHooks = NoopSubscriptionHooks{}
	interactionHooks  InteractionHooks  = NoopInteractionHooks{}
	hooksMu           sync.RWMutex
)

// SetPositionHooks registers custom position hooks.
// This should be called once at application startup before any controllers
// are created.
func SetPositionHooks(h PositionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		positionHooks = h
	}
}

// SetSubscriptionHooks registers custom subscription hooks.
// This should be called once at application startup.
func SetSubscriptionHooks(h SubscriptionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		subscriptionHooks = h
	}
}

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// Position returns the registered position hooks.
func Position() PositionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return positionHooks
}

// Subscription returns the registered subscription hooks.
func Subscription() SubscriptionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return subscriptionHooks
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	positionHooks = NoopPositionHooks{}
	subscriptionHooks = NoopSubscriptionHooks{}
	interactionHooks = NoopInteractionHooks{}
}
