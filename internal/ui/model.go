package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	zone "github.com/lrstanley/bubblezone"

	"rubberband"
	"rubberband/internal/ui/views"
)

// chromeRows is the number of non-list rows in the layout: one title
// row above the list, one status row and one help row below it.
const chromeRows = 3

// overscan is how many rows beyond the viewport still report a rect.
// Rows further out behave like unmaterialized items.
const overscan = 20

// RefreshMsg asks the model to repaint. It is sent from outside the
// bubbletea loop when a domain event arrives on the bus.
type RefreshMsg struct{}

type dragTickMsg time.Time

func dragTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return dragTickMsg(t)
	})
}

// Model is the main UI model for the demo list
type Model struct {
	ctrl     *rubberband.Controller
	surface  *listSurface
	items    []string
	renderer *views.Renderer
	keys     KeyMap
	help     help.Model
	zones    *zone.Manager

	width  int
	height int

	// pending click candidate, resolved on release
	pressedID   string
	pressedMods rubberband.Modifiers

	status string
}

// NewModel creates the demo model, attaches a row-based scroll surface
// to the controller and registers every item's rect accessor. Rects are
// reported in viewport rows; rows far outside the visible window report
// absence.
func NewModel(ctrl *rubberband.Controller, items []string, zones *zone.Manager) *Model {
	m := &Model{
		ctrl:     ctrl,
		surface:  newListSurface(len(items)),
		items:    items,
		renderer: views.NewRenderer(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		zones:    zones,
		status:   "drag to select, ctrl adds/inverts, shift extends",
	}

	ctrl.AttachSurface(m.surface)

	for i, id := range items {
		idx := i
		ctrl.Register(id, func() (rubberband.Rect, bool) {
			return m.itemRect(idx)
		})
	}

	return m
}

func (m *Model) itemRect(idx int) (rubberband.Rect, bool) {
	offset := m.surface.offset()
	viewport := m.viewportHeight()
	if idx < offset-overscan || idx > offset+viewport+overscan {
		return rubberband.Rect{}, false
	}

	top := float32(idx - offset)
	return rubberband.Rect{
		Left:   0,
		Top:    top,
		Right:  float32(m.width),
		Bottom: top + 1,
	}, true
}

func (m *Model) viewportHeight() int {
	h := m.height - chromeRows
	if h < 1 {
		return 1
	}
	return h
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.setViewport(m.viewportHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dragTickMsg:
		// keep repainting while the marquee follows auto-scroll
		if m.ctrl.IsSelecting() {
			return m, dragTick()
		}
		return m, nil

	case RefreshMsg:
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.surface.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.surface.scrollBy(1)
	case key.Matches(msg, m.keys.SelectAll):
		m.ctrl.SelectAll()
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Clear()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.surface.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.surface.scrollBy(3)
		return m, nil
	}

	p := rubberband.Pt(float32(msg.X), float32(msg.Y-1))
	mods := rubberband.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressedID = m.itemAt(msg)
		m.pressedMods = mods
		m.ctrl.PointerDown(p, mods, rubberband.SourceMouse)

	case tea.MouseActionMotion:
		m.ctrl.PointerMove(p, mods)
		if m.ctrl.IsSelecting() {
			return m, dragTick()
		}

	case tea.MouseActionRelease:
		wasDragging := m.ctrl.IsSelecting()
		m.ctrl.PointerUp(p)
		if !wasDragging && m.pressedID != "" {
			m.ctrl.ItemClicked(m.pressedID, m.pressedMods)
		}
		m.pressedID = ""
	}

	return m, nil
}

// itemAt hit-tests the pointer against the marked row zones.
func (m *Model) itemAt(msg tea.MouseMsg) string {
	offset := m.surface.offset()
	viewport := m.viewportHeight()
	for i := offset; i < offset+viewport && i < len(m.items); i++ {
		id := m.items[i]
		if m.zones.Get(id).InBounds(msg) {
			return id
		}
	}
	return ""
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	selected := make(map[string]bool)
	for _, id := range m.ctrl.Selection() {
		selected[id] = true
	}
	anchor, _ := m.ctrl.Anchor()

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Items:          m.items,
		Offset:         m.surface.offset(),
		ViewportHeight: m.viewportHeight(),
		Selected:       selected,
		Anchor:         anchor,
		DragActive:     m.ctrl.IsSelecting(),
		StatusMessage:  m.status,
		HelpView:       m.help.View(m.keys),
		Mark:           m.zones.Mark,
	}
	if mr, ok := m.ctrl.MarqueeRect(); ok {
		state.HasMarquee = true
		state.MarqueeLeft = mr.Left
		state.MarqueeTop = mr.Top
		state.MarqueeRight = mr.Right
		state.MarqueeBottom = mr.Bottom
	}

	return m.zones.Scan(m.renderer.Render(state))
}
