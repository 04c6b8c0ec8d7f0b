package floating

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/perchui/perch/pkg/anchor"
	"github.com/perchui/perch/pkg/observability"
)

// =============================================================================
// Controller
// =============================================================================

// Controller binds one floating element to the positioning engine. It owns
// the reference store, the asynchronous recomputation pipeline, the
// continuous-update subscription, and the shared behavior [Context].
//
// All exported methods are safe for concurrent use. Callbacks (OnChange,
// OnOpenChange, OnError) are always invoked outside the controller's lock.
type Controller struct {
	mu sync.Mutex

	// Static configuration.
	cfg    anchor.Config
	engine anchor.ComputeFunc

	whileMounted WhileMountedFunc
	trackOpen    bool
	transform    bool
	onOpenChange func(bool, OpenReason)
	onChange     func()
	onError      func(error)
	logger       *log.Logger

	// Element state. posRef is the explicit geometric override; nil means
	// follow reference. refExternal/floatExternal mark fields supplied
	// through Options.Elements, whose setters are inert.
	reference     anchor.Element
	posRef        anchor.Element
	floatingEl    anchor.Element
	refExternal   bool
	floatExternal bool

	// Position state. seq is the monotonic request token: only the result
	// carrying the latest issued token may commit.
	pos        anchor.Position
	positioned bool
	seq        uint64

	// Subscription state. subGen invalidates resubscriptions that lost a
	// race against a newer element change.
	cancelSub anchor.CancelFunc
	subGen    uint64

	open   bool
	closed bool

	refs Refs
	ctx  Context

	// baseCtx cancels in-flight computations on Close.
	baseCtx   context.Context
	cancelCtx context.CancelFunc
}

// NewController validates opts and creates a controller. When
// [Options.Elements] supplies both elements the first computation is
// scheduled immediately; otherwise nothing happens until the setters
// provide them.
func NewController(opts Options) (*Controller, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	placement := opts.Placement
	if placement == "" {
		placement = anchor.DefaultPlacement
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = anchor.DefaultStrategy
	}
	engine := opts.Compute
	if engine == nil {
		engine = anchor.Compute
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	baseCtx, cancelCtx := context.WithCancel(context.Background())

	c := &Controller{
		cfg: anchor.Config{
			Placement:  placement,
			Strategy:   strategy,
			Middleware: opts.Middleware,
			Boundary:   opts.Boundary,
		},
		engine:       engine,
		whileMounted: opts.WhileMounted,
		trackOpen:    opts.TrackOpen,
		transform:    opts.Transform,
		onOpenChange: opts.OnOpenChange,
		onChange:     opts.OnChange,
		onError:      opts.OnError,
		logger:       logger,
		open:         !opts.TrackOpen || opts.Open,
		baseCtx:      baseCtx,
		cancelCtx:    cancelCtx,
	}
	c.refs = Refs{c: c}
	c.ctx = Context{c: c, id: uuid.NewString(), data: newData()}

	if opts.Elements.Reference != nil {
		c.reference = opts.Elements.Reference
		c.refExternal = true
	}
	if opts.Elements.Floating != nil {
		c.floatingEl = opts.Elements.Floating
		c.floatExternal = true
	}

	c.resubscribe()
	c.mu.Lock()
	c.scheduleLocked()
	c.mu.Unlock()

	return c, nil
}

// Refs returns the reference store.
func (c *Controller) Refs() *Refs { return &c.refs }

// Context returns the shared behavior context. The returned pointer is
// stable for the controller's lifetime.
func (c *Controller) Context() *Context { return &c.ctx }

// Position returns the last committed position. Check [Controller.IsPositioned]
// before relying on the coordinates.
func (c *Controller) Position() anchor.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// IsPositioned reports whether a computed position has been committed and
// is still current: it reads false until the first commit, and again after
// either element is cleared or (with TrackOpen) the element closes.
func (c *Controller) IsPositioned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positioned
}

// Open reports the current open state. Without TrackOpen it is always true.
func (c *Controller) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Update schedules an asynchronous recomputation with the current elements
// and configuration. It is the function handed to continuous-update
// subscriptions, and is safe to call at any time; without both elements it
// is a no-op.
func (c *Controller) Update() {
	c.mu.Lock()
	c.scheduleLocked()
	c.mu.Unlock()
}

// Close detaches the controller: it cancels the continuous-update
// subscription and discards any in-flight computation. Further setter and
// Update calls are no-ops. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.seq++ // discard in-flight results
	c.subGen++
	cancel := c.cancelSub
	c.cancelSub = nil
	c.mu.Unlock()

	c.cancelCtx()
	if cancel != nil {
		cancel()
		observability.Subscription().OnCancel()
	}
}

// =============================================================================
// Element Setters
// =============================================================================

func (c *Controller) setReference(el anchor.Element) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.refExternal {
		c.mu.Unlock()
		c.logger.Debug("SetReference ignored: reference supplied via Options.Elements")
		return
	}
	if sameElement(c.reference, el) {
		c.mu.Unlock()
		return
	}
	c.reference = el
	// Geometry follows the reference only when no explicit position
	// reference is set.
	geom := c.posRef == nil
	if geom {
		c.elementsChangedLocked()
	}
	c.mu.Unlock()

	if geom {
		c.resubscribe()
		c.Update()
	}
	c.notifyChange()
}

func (c *Controller) setPositionReference(el anchor.Element) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if sameElement(c.posRef, el) {
		c.mu.Unlock()
		return
	}
	c.posRef = el
	c.elementsChangedLocked()
	c.mu.Unlock()

	c.resubscribe()
	c.Update()
	c.notifyChange()
}

func (c *Controller) setFloating(el anchor.Element) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.floatExternal {
		c.mu.Unlock()
		c.logger.Debug("SetFloating ignored: floating element supplied via Options.Elements")
		return
	}
	if sameElement(c.floatingEl, el) {
		c.mu.Unlock()
		return
	}
	c.floatingEl = el
	c.elementsChangedLocked()
	c.mu.Unlock()

	c.resubscribe()
	c.Update()
	c.notifyChange()
}

// effectivePositionRefLocked returns the geometric anchor: the explicit
// position reference when set, otherwise the reference element.
func (c *Controller) effectivePositionRefLocked() anchor.Element {
	if c.posRef != nil {
		return c.posRef
	}
	return c.reference
}

// elementsChangedLocked invalidates any in-flight computation and, when a
// required element is now absent, clears the positioned flag.
func (c *Controller) elementsChangedLocked() {
	c.seq++
	if c.effectivePositionRefLocked() == nil || c.floatingEl == nil {
		c.positioned = false
	}
}

// =============================================================================
// Open Tracking
// =============================================================================

func (c *Controller) setOpen(open bool, reason OpenReason) {
	c.mu.Lock()
	if c.closed || c.open == open {
		c.mu.Unlock()
		return
	}
	c.open = open
	if c.trackOpen {
		if open {
			c.scheduleLocked()
		} else {
			// Closing discards in-flight results and resets the
			// positioned flag so one-shot positioning side effects
			// re-engage on the next open.
			c.seq++
			c.positioned = false
		}
	}
	cb := c.onOpenChange
	c.mu.Unlock()

	if cb != nil {
		cb(open, reason)
	}
	c.notifyChange()
}

// =============================================================================
// Position Engine Adapter
// =============================================================================

// scheduleLocked issues a new computation request carrying the next token.
// Missing elements and (with TrackOpen) the closed state suppress the
// request entirely.
func (c *Controller) scheduleLocked() {
	if c.closed {
		return
	}
	if c.trackOpen && !c.open {
		return
	}
	ref := c.effectivePositionRefLocked()
	fl := c.floatingEl
	if ref == nil || fl == nil {
		return
	}

	c.seq++
	go c.runCompute(c.seq, ref, fl, c.cfg)
}

// runCompute performs one asynchronous computation and commits the result
// if its token is still the latest. Stale results — superseded, or arriving
// after Close — are discarded without touching state.
func (c *Controller) runCompute(seq uint64, ref, fl anchor.Element, cfg anchor.Config) {
	observability.Position().OnComputeStart(seq, string(cfg.Placement))
	start := time.Now()
	pos, err := c.engine(c.baseCtx, ref, fl, cfg)
	observability.Position().OnComputeComplete(seq, string(cfg.Placement), time.Since(start), err)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		observability.Position().OnResultDiscarded(seq, latest)
		return
	}
	if err != nil {
		onError := c.onError
		logger := c.logger
		c.mu.Unlock()
		// No partial commit: previous position and flag survive.
		if onError != nil {
			onError(err)
		} else {
			logger.Error("position computation failed", "err", err)
		}
		return
	}
	c.pos = pos
	c.positioned = true
	c.mu.Unlock()

	c.notifyChange()
}

func (c *Controller) notifyChange() {
	c.mu.Lock()
	cb := c.onChange
	closed := c.closed
	c.mu.Unlock()
	if cb != nil && !closed {
		cb()
	}
}

// =============================================================================
// Lifecycle Subscriber
// =============================================================================

// resubscribe tears down the current continuous-update subscription and,
// when a WhileMounted callback is configured and both elements are present,
// starts a new one. The generation counter discards subscriptions that lost
// a race against a newer element change, so at most one is ever live.
func (c *Controller) resubscribe() {
	c.mu.Lock()
	old := c.cancelSub
	c.cancelSub = nil
	c.subGen++
	gen := c.subGen
	wm := c.whileMounted
	ref := c.effectivePositionRefLocked()
	fl := c.floatingEl
	closed := c.closed
	c.mu.Unlock()

	if old != nil {
		old()
		observability.Subscription().OnCancel()
	}
	if closed || wm == nil || ref == nil || fl == nil {
		return
	}

	// Started outside the lock: the callback may invoke update
	// synchronously.
	cancel := wm(ref, fl, c.Update)
	observability.Subscription().OnSubscribe()

	c.mu.Lock()
	if c.closed || gen != c.subGen {
		c.mu.Unlock()
		if cancel != nil {
			cancel()
			observability.Subscription().OnCancel()
		}
		return
	}
	c.cancelSub = cancel
	c.mu.Unlock()
}
