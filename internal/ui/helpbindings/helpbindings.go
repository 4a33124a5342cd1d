// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/ui"
	"github.com/llehouerou/drawbar/internal/ui/popup"
	"github.com/llehouerou/drawbar/internal/ui/render"
	"github.com/llehouerou/drawbar/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{"global", "toolbar", "canvas", "tools"}

var categoryLabels = map[string]string{
	"global":  "Global",
	"toolbar": "Toolbar",
	"canvas":  "Canvas",
	"tools":   "Tools",
}

// chrome is the popup height not available to binding lines: border,
// title and footer with their spacing.
const chrome = 6

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []line
	scrollOffset int
	theme        *styles.Theme
}

type line struct {
	header bool
	key    string
	desc   string
}

// New creates a help popup for the given bindings.
func New(bindings []keymap.Binding, t *styles.Theme) *Model {
	if t == nil {
		t = styles.T()
	}
	m := &Model{theme: t}
	m.SetBindings(bindings)
	return m
}

// SetBindings replaces the listed bindings and resets the scroll.
func (m *Model) SetBindings(bindings []keymap.Binding) {
	m.lines = nil
	for _, ctx := range categoryOrder {
		group := keymap.ByContext(bindings, ctx)
		if len(group) == 0 {
			continue
		}
		m.lines = append(m.lines, line{header: true, desc: categoryLabels[ctx]})
		for _, b := range group {
			if len(b.Keys) == 0 {
				continue
			}
			m.lines = append(m.lines, line{key: strings.Join(b.Keys, ", "), desc: b.Description})
		}
	}
	m.scrollOffset = 0
}

// SetTheme changes the popup colors.
func (m *Model) SetTheme(t *styles.Theme) { m.theme = t }

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := m.theme.S()

	keyWidth := 0
	for _, l := range m.lines {
		if !l.header {
			keyWidth = max(keyWidth, lipgloss.Width(l.key))
		}
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	rows := make([]string, 0, end-m.scrollOffset)
	for _, l := range m.lines[m.scrollOffset:end] {
		if l.header {
			rows = append(rows, s.Warning.Bold(true).Render(l.desc))
			continue
		}
		rows = append(rows, s.Key.Render(render.Pad(l.key, keyWidth))+"  "+s.Base.Render(l.desc))
	}

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return popup.Frame(m.theme, "Help", strings.Join(rows, "\n"), footer, m.Width()-2)
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
