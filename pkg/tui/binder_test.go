package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/perchui/perch/pkg/anchor"
	"github.com/perchui/perch/pkg/floating"
	"github.com/perchui/perch/pkg/geo"
)

func listenOne(t *testing.T, b *Binder) tea.Msg {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- b.Listen()() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(time.Second):
		t.Fatal("no binder message within deadline")
		return nil
	}
}

func TestBinderDeliversPositionMsg(t *testing.T) {
	b := NewBinder()
	defer b.Close()

	c, err := floating.NewController(floating.Options{
		OnChange: b.Invalidate,
		Elements: floating.Elements{
			Reference: anchor.Static{Rect: geo.NewRect(0, 0, 80, 30)},
			Floating:  anchor.Static{Rect: geo.NewRect(0, 0, 100, 40)},
		},
	})
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	defer c.Close()
	b.Bind(c)

	msg := listenOne(t, b)
	pos, ok := msg.(PositionMsg)
	if !ok {
		t.Fatalf("message = %T, want PositionMsg", msg)
	}
	if !pos.Styles.Positioned {
		t.Error("styles not positioned")
	}
	if pos.Styles.X != -10 || pos.Styles.Y != 30 {
		t.Errorf("offset = (%d, %d), want (-10, 30)", pos.Styles.X, pos.Styles.Y)
	}
}

func TestBinderDeliversOpenMsg(t *testing.T) {
	b := NewBinder()
	defer b.Close()

	b.OpenChanged(true, floating.ReasonClick)

	msg := listenOne(t, b)
	open, ok := msg.(OpenMsg)
	if !ok {
		t.Fatalf("message = %T, want OpenMsg", msg)
	}
	if !open.Open || open.Reason != floating.ReasonClick {
		t.Errorf("OpenMsg = %+v, want open via click", open)
	}
}

func TestBinderUnboundInvalidateIsNoop(t *testing.T) {
	b := NewBinder()
	defer b.Close()

	b.Invalidate() // must not panic or enqueue
	b.OpenChanged(false, floating.ReasonAPI)

	msg := listenOne(t, b)
	if _, ok := msg.(OpenMsg); !ok {
		t.Fatalf("message = %T, want the OpenMsg only", msg)
	}
}

func TestBinderCloseReleasesListeners(t *testing.T) {
	b := NewBinder()
	b.Close()

	if msg := b.Listen()(); msg != nil {
		t.Fatalf("Listen() after Close = %v, want nil", msg)
	}

	// Late callbacks after Close are dropped.
	b.Invalidate()
	b.OpenChanged(true, floating.ReasonHover)
}

func TestBinderCoalescesWhenSlow(t *testing.T) {
	b := NewBinder()
	defer b.Close()

	// Overfill the buffer; sends never block.
	for range 100 {
		b.OpenChanged(true, floating.ReasonHover)
	}

	msg := listenOne(t, b)
	if _, ok := msg.(OpenMsg); !ok {
		t.Fatalf("message = %T, want OpenMsg", msg)
	}
}
