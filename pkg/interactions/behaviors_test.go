package interactions

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perchui/perch/pkg/floating"
)

// transitionLog records open-state transitions delivered to OnOpenChange.
type transitionLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *transitionLog) record(open bool, reason floating.OpenReason) {
	l.mu.Lock()
	l.entries = append(l.entries, fmt.Sprintf("%v/%s", open, reason))
	l.mu.Unlock()
}

func (l *transitionLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// newTestContext builds an open-tracking controller with no elements, so
// behaviors exercise pure open-state transitions.
func newTestContext(t *testing.T) (*floating.Context, *transitionLog) {
	t.Helper()
	log := &transitionLog{}
	c, err := floating.NewController(floating.Options{
		TrackOpen:    true,
		OnOpenChange: log.record,
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c.Context(), log
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

// =============================================================================
// Hover
// =============================================================================

func TestHoverOpensAndCloses(t *testing.T) {
	ctx, log := newTestContext(t)
	props := Compose(Hover(ctx, nil)).ReferenceProps(nil)

	props.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})
	assert.True(t, ctx.Open())
	assert.Equal(t, "mouse", ctx.Data().GetString(DataOpenEvent))

	props.Dispatch("onMouseLeave", &Event{Type: EventMouseLeave})
	assert.False(t, ctx.Open())

	assert.Equal(t, []string{"true/hover", "false/hover"}, log.snapshot())
}

func TestHoverOpenDelay(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Hover(ctx, &HoverOptions{OpenDelay: 10 * time.Millisecond})).ReferenceProps(nil)

	props.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})
	eventually(t, ctx.Open, "hover never opened after delay")
}

func TestHoverLeaveBeforeOpenDelayCancels(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Hover(ctx, &HoverOptions{OpenDelay: 80 * time.Millisecond})).ReferenceProps(nil)

	props.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})
	props.Dispatch("onMouseLeave", &Event{Type: EventMouseLeave})

	time.Sleep(160 * time.Millisecond)
	assert.False(t, ctx.Open())
}

func TestHoverFloatingEnterCancelsClose(t *testing.T) {
	ctx, _ := newTestContext(t)
	composed := Compose(Hover(ctx, &HoverOptions{CloseDelay: 40 * time.Millisecond}))
	reference := composed.ReferenceProps(nil)
	floatingProps := composed.FloatingProps(nil)

	reference.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})
	require.True(t, ctx.Open())

	// Traverse from reference to floating element within the close delay.
	reference.Dispatch("onMouseLeave", &Event{Type: EventMouseLeave})
	floatingProps.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})

	time.Sleep(120 * time.Millisecond)
	assert.True(t, ctx.Open())

	floatingProps.Dispatch("onMouseLeave", &Event{Type: EventMouseLeave})
	eventually(t, func() bool { return !ctx.Open() }, "hover never closed after leaving floating element")
}

func TestHoverIgnoreFloating(t *testing.T) {
	ctx, _ := newTestContext(t)
	composed := Compose(Hover(ctx, &HoverOptions{IgnoreFloating: true}))

	assert.Empty(t, composed.FloatingProps(nil))
}

func TestHoverDisabled(t *testing.T) {
	ctx, _ := newTestContext(t)
	composed := Compose(Hover(ctx, &HoverOptions{Disabled: true}))

	assert.Empty(t, composed.ReferenceProps(nil))
	assert.Empty(t, composed.FloatingProps(nil))
}

// =============================================================================
// Focus
// =============================================================================

func TestFocusOpensAndCloses(t *testing.T) {
	ctx, log := newTestContext(t)
	props := Compose(Focus(ctx, nil)).ReferenceProps(nil)

	props.Dispatch("onFocus", &Event{Type: EventFocus})
	assert.True(t, ctx.Open())
	assert.Equal(t, "focus", ctx.Data().GetString(DataOpenEvent))

	props.Dispatch("onBlur", &Event{Type: EventBlur})
	assert.False(t, ctx.Open())

	assert.Equal(t, []string{"true/focus", "false/focus"}, log.snapshot())
}

// =============================================================================
// Click
// =============================================================================

func TestClickToggles(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Click(ctx, nil)).ReferenceProps(nil)

	props.Dispatch("onClick", &Event{Type: EventClick})
	assert.True(t, ctx.Open())
	assert.Equal(t, "mouse", ctx.Data().GetString(DataOpenEvent))

	props.Dispatch("onClick", &Event{Type: EventClick})
	assert.False(t, ctx.Open())
}

func TestClickNoToggleStaysOpen(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Click(ctx, &ClickOptions{NoToggle: true})).ReferenceProps(nil)

	props.Dispatch("onClick", &Event{Type: EventClick})
	props.Dispatch("onClick", &Event{Type: EventClick})
	assert.True(t, ctx.Open())
}

func TestClickKeyboardActivation(t *testing.T) {
	tests := []struct {
		key   string
		opens bool
	}{
		{"enter", true},
		{" ", true},
		{"a", false},
		{"esc", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			props := Compose(Click(ctx, nil)).ReferenceProps(nil)

			e := &Event{Type: EventKeyDown, Key: tt.key}
			props.Dispatch("onKeyDown", e)

			assert.Equal(t, tt.opens, ctx.Open())
			assert.Equal(t, tt.opens, e.DefaultPrevented())
			if tt.opens {
				assert.Equal(t, "keyboard", ctx.Data().GetString(DataOpenEvent))
			}
		})
	}
}

func TestClickIgnoreKeyboard(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Click(ctx, &ClickOptions{IgnoreKeyboard: true})).ReferenceProps(nil)

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "enter"})
	assert.False(t, ctx.Open())
}

// =============================================================================
// Dismiss
// =============================================================================

func TestDismissEscapeCloses(t *testing.T) {
	ctx, log := newTestContext(t)
	ctx.SetOpen(true, floating.ReasonAPI)
	props := Compose(Dismiss(ctx, nil)).FloatingProps(nil)

	e := &Event{Type: EventKeyDown, Key: "esc"}
	props.Dispatch("onKeyDown", e)

	assert.False(t, ctx.Open())
	assert.True(t, e.DefaultPrevented())
	assert.Equal(t, []string{"true/api", "false/escape-key"}, log.snapshot())
}

func TestDismissOutsidePressCloses(t *testing.T) {
	ctx, log := newTestContext(t)
	ctx.SetOpen(true, floating.ReasonAPI)
	props := Compose(Dismiss(ctx, nil)).FloatingProps(nil)

	props.Dispatch("onOutsidePress", &Event{Type: EventOutsidePress})
	assert.False(t, ctx.Open())
	assert.Equal(t, []string{"true/api", "false/outside-press"}, log.snapshot())
}

func TestDismissWhileClosedIsNoop(t *testing.T) {
	ctx, log := newTestContext(t)
	props := Compose(Dismiss(ctx, nil)).FloatingProps(nil)

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "esc"})
	props.Dispatch("onOutsidePress", &Event{Type: EventOutsidePress})

	assert.Empty(t, log.snapshot())
}

func TestDismissOptions(t *testing.T) {
	t.Run("no escape key", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		ctx.SetOpen(true, floating.ReasonAPI)
		props := Compose(Dismiss(ctx, &DismissOptions{NoEscapeKey: true})).FloatingProps(nil)

		props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "esc"})
		assert.True(t, ctx.Open())
	})

	t.Run("no outside press", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		ctx.SetOpen(true, floating.ReasonAPI)
		props := Compose(Dismiss(ctx, &DismissOptions{NoOutsidePress: true})).FloatingProps(nil)

		props.Dispatch("onOutsidePress", &Event{Type: EventOutsidePress})
		assert.True(t, ctx.Open())
	})

	t.Run("reference press", func(t *testing.T) {
		ctx, log := newTestContext(t)
		ctx.SetOpen(true, floating.ReasonAPI)
		props := Compose(Dismiss(ctx, &DismissOptions{ReferencePress: true})).ReferenceProps(nil)

		props.Dispatch("onClick", &Event{Type: EventClick})
		assert.False(t, ctx.Open())
		assert.Equal(t, []string{"true/api", "false/reference-press"}, log.snapshot())
	})
}

// =============================================================================
// Role
// =============================================================================

func TestRoleAttributes(t *testing.T) {
	ctx, _ := newTestContext(t)
	composed := Compose(Role(ctx, &RoleOptions{Role: "menu"}))

	reference := composed.ReferenceProps(nil)
	floatingProps := composed.FloatingProps(nil)

	refID := "perch-ref-" + ctx.ID()
	floatingID := "perch-floating-" + ctx.ID()

	assert.Equal(t, refID, reference.String("id"))
	assert.Equal(t, "menu", reference.String("aria-haspopup"))
	assert.Equal(t, "false", reference.String("aria-expanded"))
	assert.Equal(t, floatingID, reference.String("aria-controls"))

	assert.Equal(t, floatingID, floatingProps.String("id"))
	assert.Equal(t, "menu", floatingProps.String("role"))
	assert.Equal(t, refID, floatingProps.String("aria-labelledby"))
}

func TestRoleExpandedTracksOpenState(t *testing.T) {
	ctx, _ := newTestContext(t)
	composed := Compose(Role(ctx, nil))

	assert.Equal(t, "false", composed.ReferenceProps(nil).String("aria-expanded"))
	ctx.SetOpen(true, floating.ReasonAPI)
	assert.Equal(t, "true", composed.ReferenceProps(nil).String("aria-expanded"))
}

func TestRoleDefaultsToDialog(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Role(ctx, nil)).FloatingProps(nil)
	assert.Equal(t, "dialog", props.String("role"))
}

func TestRoleTooltipHaspopup(t *testing.T) {
	ctx, _ := newTestContext(t)
	props := Compose(Role(ctx, &RoleOptions{Role: "tooltip"})).ReferenceProps(nil)
	assert.Equal(t, "dialog", props.String("aria-haspopup"))
}

// =============================================================================
// ListNavigation
// =============================================================================

func newListContext(t *testing.T, count int, opts *ListNavOptions) (*floating.Context, *Interactions, *[]int) {
	t.Helper()
	ctx, _ := newTestContext(t)
	var visited []int
	composed := Compose(ListNavigation(ctx, func() int { return count }, func(i int) {
		visited = append(visited, i)
	}, opts))
	return ctx, composed, &visited
}

func TestListNavigationSteps(t *testing.T) {
	ctx, composed, visited := newListContext(t, 3, nil)
	ctx.SetOpen(true, floating.ReasonAPI)
	props := composed.FloatingProps(nil)

	keydown := func(key string) *Event {
		e := &Event{Type: EventKeyDown, Key: key}
		props.Dispatch("onKeyDown", e)
		return e
	}

	e := keydown("down")
	assert.True(t, e.DefaultPrevented())
	assert.Equal(t, 0, ctx.Data().GetInt(DataActiveIndex))

	keydown("down")
	keydown("down")
	assert.Equal(t, 2, ctx.Data().GetInt(DataActiveIndex))

	// Clamped at the end without Loop.
	keydown("down")
	assert.Equal(t, 2, ctx.Data().GetInt(DataActiveIndex))

	keydown("up")
	assert.Equal(t, 1, ctx.Data().GetInt(DataActiveIndex))

	assert.Equal(t, []int{0, 1, 2, 2, 1}, *visited)
}

func TestListNavigationLoops(t *testing.T) {
	ctx, composed, _ := newListContext(t, 3, &ListNavOptions{Loop: true})
	ctx.SetOpen(true, floating.ReasonAPI)
	props := composed.FloatingProps(nil)

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "up"})
	assert.Equal(t, 2, ctx.Data().GetInt(DataActiveIndex))

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "down"})
	assert.Equal(t, 0, ctx.Data().GetInt(DataActiveIndex))
}

func TestListNavigationHorizontal(t *testing.T) {
	ctx, composed, _ := newListContext(t, 2, &ListNavOptions{Horizontal: true})
	ctx.SetOpen(true, floating.ReasonAPI)
	props := composed.FloatingProps(nil)

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "down"})
	assert.Equal(t, -1, ctx.Data().GetInt(DataActiveIndex))

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "right"})
	assert.Equal(t, 0, ctx.Data().GetInt(DataActiveIndex))
}

func TestListNavigationOpenOnArrow(t *testing.T) {
	ctx, composed, _ := newListContext(t, 3, &ListNavOptions{OpenOnArrow: true})
	reference := composed.ReferenceProps(nil)

	reference.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "down"})
	assert.True(t, ctx.Open())
	assert.Equal(t, 0, ctx.Data().GetInt(DataActiveIndex))
	assert.Equal(t, "keyboard", ctx.Data().GetString(DataOpenEvent))
}

func TestListNavigationOpenOnArrowBackward(t *testing.T) {
	ctx, composed, _ := newListContext(t, 3, &ListNavOptions{OpenOnArrow: true})
	reference := composed.ReferenceProps(nil)

	reference.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "up"})
	assert.True(t, ctx.Open())
	assert.Equal(t, 2, ctx.Data().GetInt(DataActiveIndex))
}

func TestListNavigationClosedWithoutOpenOnArrow(t *testing.T) {
	ctx, composed, _ := newListContext(t, 3, nil)
	reference := composed.ReferenceProps(nil)

	e := &Event{Type: EventKeyDown, Key: "down"}
	reference.Dispatch("onKeyDown", e)

	assert.False(t, ctx.Open())
	assert.False(t, e.DefaultPrevented())
}

func TestListNavigationItemProps(t *testing.T) {
	ctx, composed, visited := newListContext(t, 3, nil)
	ctx.SetOpen(true, floating.ReasonAPI)

	item := composed.ItemProps(nil, ItemState{Index: 1, Active: true, Selected: true})
	assert.Equal(t, "perch-item-"+ctx.ID()+"-1", item.String("id"))
	assert.Equal(t, "true", item.String("aria-selected"))
	assert.Equal(t, "0", item.String("tabindex"))

	inactive := composed.ItemProps(nil, ItemState{Index: 2})
	assert.Equal(t, "-1", inactive.String("tabindex"))
	assert.Equal(t, "false", inactive.String("aria-selected"))

	// Pointer hover activates the item.
	inactive.Dispatch("onMouseEnter", &Event{Type: EventMouseEnter})
	assert.Equal(t, 2, ctx.Data().GetInt(DataActiveIndex))
	assert.Equal(t, []int{2}, *visited)
}

func TestListNavigationActiveDescendant(t *testing.T) {
	ctx, composed, _ := newListContext(t, 3, nil)
	ctx.SetOpen(true, floating.ReasonAPI)

	assert.Equal(t, "", composed.FloatingProps(nil).String("aria-activedescendant"))

	ctx.Data().Set(DataActiveIndex, 1)
	assert.Equal(t, "perch-item-"+ctx.ID()+"-1",
		composed.FloatingProps(nil).String("aria-activedescendant"))
}

func TestListNavigationEmptyList(t *testing.T) {
	ctx, composed, visited := newListContext(t, 0, &ListNavOptions{OpenOnArrow: true})
	ctx.SetOpen(true, floating.ReasonAPI)
	props := composed.FloatingProps(nil)

	props.Dispatch("onKeyDown", &Event{Type: EventKeyDown, Key: "down"})
	assert.Equal(t, -1, ctx.Data().GetInt(DataActiveIndex))
	assert.Empty(t, *visited)
}
