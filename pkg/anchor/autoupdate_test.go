package anchor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/perchui/perch/pkg/geo"
)

// movableElement is a thread-safe Element whose rect can be changed while a
// subscription is polling it.
type movableElement struct {
	mu   sync.Mutex
	rect geo.Rect
}

func (e *movableElement) BoundingRect() geo.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

func (e *movableElement) moveTo(r geo.Rect) {
	e.mu.Lock()
	e.rect = r
	e.mu.Unlock()
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestAutoUpdateInitialFire(t *testing.T) {
	ref := &movableElement{rect: geo.NewRect(0, 0, 10, 2)}
	fl := &movableElement{rect: geo.NewRect(0, 0, 20, 4)}

	var calls atomic.Int64
	cancel := AutoUpdate(ref, fl, func() { calls.Add(1) }, &AutoUpdateOptions{Interval: 5 * time.Millisecond})
	defer cancel()

	waitFor(t, func() bool { return calls.Load() >= 1 }, "initial update never fired")
}

func TestAutoUpdateFiresOnRectChange(t *testing.T) {
	ref := &movableElement{rect: geo.NewRect(0, 0, 10, 2)}
	fl := &movableElement{rect: geo.NewRect(0, 0, 20, 4)}

	var calls atomic.Int64
	cancel := AutoUpdate(ref, fl, func() { calls.Add(1) }, &AutoUpdateOptions{
		Interval:    5 * time.Millisecond,
		SkipInitial: true,
	})
	defer cancel()

	// Stable rects: no updates.
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("update fired %d times with stable rects", calls.Load())
	}

	ref.moveTo(geo.NewRect(5, 5, 10, 2))
	waitFor(t, func() bool { return calls.Load() >= 1 }, "update never fired after rect change")
}

func TestAutoUpdateCancelStopsUpdates(t *testing.T) {
	ref := &movableElement{rect: geo.NewRect(0, 0, 10, 2)}
	fl := &movableElement{rect: geo.NewRect(0, 0, 20, 4)}

	var calls atomic.Int64
	cancel := AutoUpdate(ref, fl, func() { calls.Add(1) }, &AutoUpdateOptions{
		Interval:    5 * time.Millisecond,
		SkipInitial: true,
	})

	cancel()
	before := calls.Load()

	ref.moveTo(geo.NewRect(9, 9, 10, 2))
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != before {
		t.Error("update fired after cancel")
	}

	// Idempotent.
	cancel()
}

func TestAutoUpdateNilElementsNoop(t *testing.T) {
	var calls atomic.Int64
	cancel := AutoUpdate(nil, nil, func() { calls.Add(1) }, nil)

	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("update fired with nil elements")
	}
	cancel()
	cancel()
}
