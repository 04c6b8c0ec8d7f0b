package cli

import (
	"context"
	"strings"
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

var menuItems = []string{"Open file", "Save", "Rename", "Duplicate", "Delete"}

// runMenuDemo starts the dropdown menu demo program.
func runMenuDemo(ctx context.Context, theme Theme) error {
	m := newMenuModel(theme, loggerFromContext(ctx))
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	m.teardown()
	return err
}

// menuModel is a click-triggered dropdown with keyboard navigation: arrow
// keys move the active item, enter selects, escape or an outside press
// closes.
type menuModel struct {
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
	selected      int
}

func newMenuModel(theme Theme, logger *log.Logger) *menuModel {
	return &menuModel{
		theme:     theme,
		logger:    logger,
		reference: &element{},
		floatie:   &element{},
		selected:  -1,
	}
}

func (m *menuModel) setup() tea.Cmd {
	m.teardown()

	m.binder = tui.NewBinder()
	ctrl, err := floating.NewController(floating.Options{
		Placement: geo.PlacementBottomStart,
		Boundary:  geo.NewRect(0, 0, float64(m.width), float64(m.height)),
		Middleware: []anchor.Middleware{
			anchor.Flip(),
			anchor.Shift(0),
		},
		WhileMounted: floating.WhileMounted(&anchor.AutoUpdateOptions{
			Interval: 30 * time.Millisecond,
		}),
		Elements: floating.Elements{
			Reference: m.reference,
			Floating:  m.floatie,
		},
		TrackOpen:    true,
		OnChange:     m.binder.Invalidate,
		OnOpenChange: m.binder.OpenChanged,
		Logger:       m.logger,
	})
	if err != nil {
		m.logger.Error("controller setup failed", "err", err)
		return tea.Quit
	}
	m.ctrl = ctrl
	m.binder.Bind(ctrl)

	fctx := ctrl.Context()
	m.composed = interactions.Compose(
		interactions.Click(fctx, nil),
		interactions.Dismiss(fctx, nil),
		interactions.Role(fctx, &interactions.RoleOptions{Role: "menu"}),
		interactions.ListNavigation(fctx,
			func() int { return len(menuItems) },
			func(index int) { m.logger.Debug("navigate", "index", index) },
			&interactions.ListNavOptions{Loop: true, OpenOnArrow: true},
		),
	)
	m.dispatcher = &tui.Dispatcher{
		Reference: m.reference.BoundingRect,
		Floating:  m.floatingRect,
		Open:      ctrl.Open,
	}

	return m.binder.Listen()
}

func (m *menuModel) teardown() {
	if m.ctrl != nil {
		m.ctrl.Close()
		m.ctrl = nil
	}
	if m.binder != nil {
		m.binder.Close()
		m.binder = nil
	}
}

func (m *menuModel) floatingRect() geo.Rect {
	dims := m.floatie.BoundingRect().Dims()
	x, y := m.styles.Offset()
	return geo.NewRect(float64(x), float64(y), dims.Width, dims.Height)
}

func (m *menuModel) activeIndex() int {
	if m.ctrl == nil {
		return -1
	}
	return m.ctrl.Context().Data().GetInt(interactions.DataActiveIndex)
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, m.setup()

	case tui.PositionMsg:
		m.styles = msg.Styles
		return m, m.binder.Listen()

	case tui.OpenMsg:
		if !msg.Open && m.ctrl != nil {
			m.ctrl.Context().Data().Delete(interactions.DataActiveIndex)
		}
		return m, m.binder.Listen()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	if m.composed != nil {
		// The caller's own enter handler merges after the behaviors'.
		floatingProps := m.composed.FloatingProps(interactions.Props{
			"onKeyDown": interactions.Handler(m.selectActive),
		})
		m.dispatcher.Dispatch(msg, m.composed.ReferenceProps(nil), floatingProps)
	}
	return m, nil
}

// selectActive commits the active item and closes the menu.
func (m *menuModel) selectActive(e *interactions.Event) {
	if e.Key != "enter" {
		return
	}
	if active := m.activeIndex(); active >= 0 {
		m.selected = active
		m.logger.Info("selected", "item", menuItems[active])
		m.ctrl.Context().SetOpen(false, floating.ReasonAPI)
	}
}

func (m *menuModel) layout() {
	button := m.buttonView()
	m.reference.moveTo(geo.NewRect(
		4, 3,
		float64(lipgloss.Width(button)),
		float64(lipgloss.Height(button)),
	))

	panel := m.panelView()
	m.floatie.moveTo(geo.NewRect(0, 0, float64(lipgloss.Width(panel)), float64(lipgloss.Height(panel))))
}

func (m *menuModel) buttonView() string {
	return m.theme.referenceStyle(m.ctrl != nil && m.ctrl.Open()).Render("Menu ▾")
}

func (m *menuModel) panelView() string {
	active := m.activeIndex()
	lines := make([]string, len(menuItems))
	for i, item := range menuItems {
		marker := "  "
		if i == m.selected {
			marker = "✓ "
		}
		line := marker + item
		if i == active {
			lines[i] = m.theme.floatingStyle().Render(line)
		} else {
			lines[i] = m.theme.dimStyle().Render(line)
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Render(strings.Join(lines, "\n"))
}

func (m *menuModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.theme.titleStyle().Render("Menu Demo") + "\n" +
		m.theme.dimStyle().Render("click or arrows to open  ↑/↓ navigate  ⏎ select  q quit")

	status := ""
	if m.selected >= 0 {
		status = m.theme.dimStyle().Render("selected: ") + menuItems[m.selected]
	}

	canvas := tui.Overlay(blankCanvas(m.width, m.height), header, 1, 0)
	if status != "" {
		canvas = tui.Overlay(canvas, status, 1, m.height-1)
	}
	ref := m.reference.BoundingRect()
	canvas = tui.Overlay(canvas, m.buttonView(), int(ref.X), int(ref.Y))

	if m.ctrl != nil && m.ctrl.Open() && m.styles.Positioned {
		x, y := m.styles.Offset()
		canvas = tui.Overlay(canvas, m.panelView(), x, y)
	}
	return canvas
}
