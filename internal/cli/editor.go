package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridsnap/pkg/layout"
)

// Editor chrome: one header row above the container, one footer row below.
const (
	editorHeaderRows = 1
	editorFooterRows = 1
)

var (
	editorModeStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	editorStaticStyle = lipgloss.NewStyle().Foreground(colorGray)
	editorHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// pointerTarget is what a mouse press landed on.
type pointerTarget struct {
	col, row int
	unitID   string
	part     layout.Part
}

// lastClick remembers the previous click for double-click detection.
type lastClick struct {
	col, row int
	at       time.Time
	valid    bool
}

// editorModel is the bubbletea model of the interactive editor. It turns
// terminal mouse events into hit-tested pointer events for the layout
// manager and draws the manager's units through its canvas.
type editorModel struct {
	mgr         *layout.Manager
	canvas      *canvas
	doubleClick time.Duration
	now         func() time.Time
	keys        editorKeyMap
	help        help.Model

	width, height int
	press         *pointerTarget
	last          lastClick
	status        string
}

func newEditorModel(mgr *layout.Manager, c *canvas, doubleClick time.Duration) *editorModel {
	m := &editorModel{
		mgr:         mgr,
		canvas:      c,
		doubleClick: doubleClick,
		now:         time.Now,
		keys:        defaultEditorKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
	}
	c.showGrid = mgr.Editable()
	mgr.Subscribe(layout.ObserverFunc(m.notify))
	return m
}

func (m *editorModel) notify(e layout.Event) {
	if e.Unit != nil {
		m.status = fmt.Sprintf("%s %s %s", e.Kind, e.Unit.ID(), e.Unit.Rect())
		return
	}
	m.status = fmt.Sprintf("%s (%d units)", e.Kind, m.mgr.Len())
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.setEditable(!m.mgr.Editable())
		case key.Matches(msg, m.keys.Clear):
			m.mgr.ClearLayout()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *editorModel) setEditable(enabled bool) {
	m.mgr.SetEditable(enabled)
	m.canvas.showGrid = enabled
	m.press = nil
	m.last = lastClick{}
	if enabled {
		m.status = "editing enabled"
	} else {
		m.status = "editing disabled"
	}
}

// handleMouse replays a terminal mouse event as the pointer event sequence
// a browser would produce: down, move while pressed, up, then click when
// the release lands on the pressed target, then dblclick for a second click
// on the same cell within the double-click window.
func (m *editorModel) handleMouse(msg tea.MouseMsg) {
	page := m.canvas.toPage(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y < m.canvas.top {
			return
		}
		id, part := m.canvas.hit(msg.X, msg.Y)
		m.press = &pointerTarget{col: msg.X, row: msg.Y, unitID: id, part: part}
		m.mgr.Dispatch(layout.PointerEvent{Kind: layout.PointerDown, Page: page, UnitID: id, Part: part})

	case tea.MouseActionMotion:
		if m.press == nil {
			return
		}
		m.mgr.Dispatch(layout.PointerEvent{Kind: layout.PointerMove, Page: page})

	case tea.MouseActionRelease:
		if m.press == nil {
			return
		}
		press := *m.press
		m.press = nil
		m.mgr.Dispatch(layout.PointerEvent{Kind: layout.PointerUp, Page: page})

		id, part := m.canvas.hit(msg.X, msg.Y)
		if id != press.unitID || part != press.part {
			m.last = lastClick{}
			return
		}
		m.mgr.Dispatch(layout.PointerEvent{Kind: layout.Click, Page: page, UnitID: id, Part: part})

		now := m.now()
		if m.last.valid && m.last.col == msg.X && m.last.row == msg.Y && now.Sub(m.last.at) <= m.doubleClick {
			m.last = lastClick{}
			m.mgr.Dispatch(layout.PointerEvent{Kind: layout.DoubleClick, Page: page, UnitID: id, Part: part})
			return
		}
		m.last = lastClick{col: msg.X, row: msg.Y, at: now, valid: true}
	}
}

func (m *editorModel) View() string {
	var b strings.Builder

	mode := editorStaticStyle.Render("static")
	if m.mgr.Editable() {
		mode = editorModeStyle.Render("editing")
	}
	header := fmt.Sprintf("%s  %s  %s", StyleTitle.Render("gridsnap"), mode,
		StyleDim.Render(fmt.Sprintf("%d units", m.mgr.Len())))
	if m.status != "" {
		header += "  " + StyleValue.Render(m.status)
	}
	b.WriteString(header)
	b.WriteString("\n")

	rows := m.height - editorHeaderRows - editorFooterRows
	b.WriteString(m.canvas.render(m.width, rows))
	b.WriteString("\n")

	if m.mgr.Editable() {
		hints := "double-click add  drag move  " + string(glyphResize) + " resize  " + string(glyphRemove) + " remove"
		b.WriteString(editorHelpStyle.Render(hints) + "  ")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}
