// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/ui"
	"github.com/llehouerou/drawbar/internal/ui/popup"
	"github.com/llehouerou/drawbar/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const maxWidth = 50

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
	theme   *styles.Theme
}

// New creates an inactive confirmation drawn with theme t.
func New(t *styles.Theme) *Model {
	if t == nil {
		t = styles.T()
	}
	return &Model{theme: t}
}

// Show activates the popup.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Dismiss hides the popup without answering.
func (m *Model) Dismiss() {
	m.active = false
	m.context = nil
}

// SetTheme changes the popup colors.
func (m *Model) SetTheme(t *styles.Theme) { m.theme = t }

// Active returns whether the confirmation is shown.
func (m *Model) Active() bool { return m.active }

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	m.active = false
	res := Result{Confirmed: yes, Context: m.context}
	return func() tea.Msg { return ActionMsg(res) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active {
		return ""
	}
	width := maxWidth
	if w := m.Width(); w > 0 {
		width = min(width, w)
	}
	return popup.Frame(m.theme, m.title, m.theme.S().Base.Render(m.message), "[y]es / [n]o", width)
}
