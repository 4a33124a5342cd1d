// Package sidebar renders the default sidebar and its chat search input.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/ui"
	uiaction "github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/render"
	"github.com/llehouerou/drawbar/internal/ui/styles"
)

// Source is the component name on emitted action messages.
const Source = "sidebar"

// MinWidth is the narrowest sidebar that still renders.
const MinWidth = 16

const maxHistory = 50

// Submitted is emitted when a chat query is entered.
type Submitted struct {
	Query string
}

// ActionType implements action.Action.
func (Submitted) ActionType() string { return "sidebar.submitted" }

// Model is the default sidebar.
type Model struct {
	ui.Base
	open     bool
	tab      string
	input    textinput.Model
	selected bool
	history  []string
}

// New creates a closed sidebar.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "Ask or search..."
	ti.CharLimit = 256
	ti.Prompt = "> "
	return &Model{input: ti}
}

// Open reports whether the sidebar is shown.
func (m *Model) Open() bool { return m.open }

// Tab returns the active tab.
func (m *Model) Tab() string { return m.tab }

// History returns the submitted queries, oldest first.
func (m *Model) History() []string { return m.history }

// Value returns the current input text.
func (m *Model) Value() string { return m.input.Value() }

// Sync shows or hides the sidebar to match the state. Closing it blurs
// the input.
func (m *Model) Sync(st appstate.State) {
	open := st.OpenSidebar != nil && st.OpenSidebar.Name == appstate.DefaultSidebarName
	if !open || st.OpenSidebar.Tab != appstate.ChatTab {
		m.input.Blur()
		m.selected = false
	}
	m.open = open
	if open {
		m.tab = st.OpenSidebar.Tab
	}
}

// SetSize sets the panel size and sizes the input to fit.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-4-lipgloss.Width(m.input.Prompt), 1)
}

// InputFocused reports whether the chat input has keyboard focus.
func (m *Model) InputFocused() bool {
	return m.open && m.input.Focused()
}

// Wants reports whether a key belongs to the focused input. Control and
// alt chords fall through so shortcuts keep working while typing.
func (m *Model) Wants(key tea.KeyMsg) bool {
	if !m.InputFocused() || key.Alt {
		return false
	}
	switch key.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyEnter, tea.KeyEsc,
		tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

// Update handles keys while the input is focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.InputFocused() {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch key.String() {
	case "esc":
		m.input.Blur()
		m.selected = false
		return nil
	case "enter":
		q := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.selected = false
		if q == "" {
			return nil
		}
		m.history = append(m.history, q)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		return uiaction.Cmd(Source, Submitted{Query: q})
	}

	if m.selected && key.Type == tea.KeyRunes {
		m.input.SetValue("")
	}
	m.selected = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the sidebar panel, or "" when closed.
func (m *Model) View(t *styles.Theme) string {
	if !m.open || m.Width() < MinWidth || m.Height() < 3 {
		return ""
	}
	s := t.S()
	inner := m.InnerWidth()

	title := s.Title.Render(render.Truncate(strings.ToUpper(m.tab), inner))
	lines := []string{title, s.Subtle.Render(render.Separator(inner))}

	if m.tab == appstate.ChatTab {
		room := max(m.InnerHeight()-len(lines)-2, 0)
		start := max(len(m.history)-room, 0)
		for _, q := range m.history[start:] {
			lines = append(lines, s.Muted.Render(render.Truncate(q, inner)))
		}
		for len(lines) < m.Height()-3 {
			lines = append(lines, "")
		}
		input := m.input.View()
		if m.selected {
			input = s.Selected.Render(render.TruncateStyled(input, inner))
		}
		lines = append(lines, input)
	}

	return t.PanelStyle(m.InputFocused()).
		Width(inner).
		Height(m.InnerHeight()).
		Render(strings.Join(lines, "\n"))
}

// Widget returns the chat input as an action widget.
func (m *Model) Widget() action.Widget {
	return input{m}
}

type input struct {
	m *Model
}

func (i input) Focused() bool { return i.m.InputFocused() }

// Focus gives the input focus. The sidebar may still be closed when an
// action focuses it within the same update, so the open flag is not checked.
func (i input) Focus() {
	i.m.input.Focus()
}

// Select marks the whole value so the next typed rune replaces it.
func (i input) Select() {
	i.m.input.CursorEnd()
	i.m.selected = i.m.input.Value() != ""
}
