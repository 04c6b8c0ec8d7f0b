package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/perchui/perch/pkg/anchor"
	"github.com/perchui/perch/pkg/floating"
	"github.com/perchui/perch/pkg/geo"
	"github.com/perchui/perch/pkg/interactions"
	"github.com/perchui/perch/pkg/tui"
)

const tooltipText = "Anchored tooltip: flips below when space above runs out."

// runTooltipDemo starts the tooltip demo program.
func runTooltipDemo(ctx context.Context, theme Theme) error {
	m := newTooltipModel(theme, loggerFromContext(ctx))
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	m.teardown()
	return err
}

// tooltipModel anchors a tooltip above a centered button. Hover or focus
// (simulated with tab) opens it; escape and pointer exits close it.
type tooltipModel struct {
	theme  Theme
	logger *log.Logger

	reference *element
	floatie   *element

	ctrl       *floating.Controller
	binder     *tui.Binder
	dispatcher *tui.Dispatcher
	composed   *interactions.Interactions

	width, height int
	styles        floating.Styles
	focused       bool
}

func newTooltipModel(theme Theme, logger *log.Logger) *tooltipModel {
	return &tooltipModel{
		theme:     theme,
		logger:    logger,
		reference: &element{},
		floatie:   &element{},
	}
}

// setup builds the controller once the window dimensions are known, and
// rebuilds it on resize so the flip/shift boundary tracks the window.
func (m *tooltipModel) setup() tea.Cmd {
	m.teardown()

	m.binder = tui.NewBinder()
	ctrl, err := floating.NewController(floating.Options{
		Placement: geo.PlacementTop,
		Boundary:  geo.NewRect(0, 0, float64(m.width), float64(m.height)),
		Middleware: []anchor.Middleware{
			anchor.Offset(1),
			anchor.Flip(),
			anchor.Shift(1),
		},
		WhileMounted: floating.WhileMounted(&anchor.AutoUpdateOptions{
			Interval: 30 * time.Millisecond,
		}),
		Elements: floating.Elements{
			Reference: m.reference,
			Floating:  m.floatie,
		},
		TrackOpen: true,
		OnChange:  m.binder.Invalidate,
		OnOpenChange: func(open bool, reason floating.OpenReason) {
			m.logger.Debug("open change", "open", open, "reason", reason)
			m.binder.OpenChanged(open, reason)
		},
		Logger: m.logger,
	})
	if err != nil {
		m.logger.Error("controller setup failed", "err", err)
		return tea.Quit
	}
	m.ctrl = ctrl
	m.binder.Bind(ctrl)

	fctx := ctrl.Context()
	m.composed = interactions.Compose(
		interactions.Hover(fctx, &interactions.HoverOptions{CloseDelay: 150 * time.Millisecond}),
		interactions.Focus(fctx, nil),
		interactions.Dismiss(fctx, nil),
		interactions.Role(fctx, &interactions.RoleOptions{Role: "tooltip"}),
	)
	m.dispatcher = &tui.Dispatcher{
		Reference: m.reference.BoundingRect,
		Floating:  m.floatingRect,
		Open:      ctrl.Open,
	}

	return m.binder.Listen()
}

func (m *tooltipModel) teardown() {
	if m.ctrl != nil {
		m.ctrl.Close()
		m.ctrl = nil
	}
	if m.binder != nil {
		m.binder.Close()
		m.binder = nil
	}
}

// floatingRect is the tooltip's on-screen rect, derived from the last
// committed offsets plus the rendered panel size.
func (m *tooltipModel) floatingRect() geo.Rect {
	dims := m.floatie.BoundingRect().Dims()
	x, y := m.styles.Offset()
	return geo.NewRect(float64(x), float64(y), dims.Width, dims.Height)
}

func (m *tooltipModel) Init() tea.Cmd {
	return nil
}

func (m *tooltipModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, m.setup()

	case tui.PositionMsg:
		m.styles = msg.Styles
		return m, m.binder.Listen()

	case tui.OpenMsg:
		return m, m.binder.Listen()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.toggleFocus()
		}
	}

	if m.composed != nil {
		m.dispatcher.Dispatch(msg, m.composed.ReferenceProps(nil), m.composed.FloatingProps(nil))
	}
	return m, nil
}

// toggleFocus simulates focus moving onto and off the button, since
// terminals have no per-element focus of their own.
func (m *tooltipModel) toggleFocus() tea.Cmd {
	if m.composed == nil {
		return nil
	}
	m.focused = !m.focused
	props := m.composed.ReferenceProps(nil)
	if m.focused {
		props.Dispatch("onFocus", &interactions.Event{Type: interactions.EventFocus})
	} else {
		props.Dispatch("onBlur", &interactions.Event{Type: interactions.EventBlur})
	}
	return nil
}

// layout centers the button and sizes the tooltip panel.
func (m *tooltipModel) layout() {
	button := m.buttonView()
	bw, bh := lipgloss.Width(button), lipgloss.Height(button)
	m.reference.moveTo(geo.NewRect(
		float64((m.width-bw)/2),
		float64(m.height/2),
		float64(bw),
		float64(bh),
	))

	panel := m.panelView()
	m.floatie.moveTo(geo.NewRect(0, 0, float64(lipgloss.Width(panel)), float64(lipgloss.Height(panel))))
}

func (m *tooltipModel) buttonView() string {
	return m.theme.referenceStyle(m.focused).Render("Hover me")
}

func (m *tooltipModel) panelView() string {
	return m.theme.floatingStyle().Render(tooltipText)
}

func (m *tooltipModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.theme.titleStyle().Render("Tooltip Demo") + "\n" +
		m.theme.dimStyle().Render("hover or tab to open  esc to dismiss  q to quit")

	canvas := tui.Overlay(blankCanvas(m.width, m.height), header, 1, 0)
	ref := m.reference.BoundingRect()
	canvas = tui.Overlay(canvas, m.buttonView(), int(ref.X), int(ref.Y))

	if m.ctrl != nil && m.ctrl.Open() && m.styles.Positioned {
		x, y := m.styles.Offset()
		canvas = tui.Overlay(canvas, m.panelView(), x, y)
	}
	return canvas
}
