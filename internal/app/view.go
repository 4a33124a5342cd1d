package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/ui/popup"
	"github.com/llehouerou/drawbar/internal/ui/render"
)

// Layout rows: toolbar, separator, canvas..., status.
const (
	toolbarRow   = 0
	chromeHeight = 3
	sidebarWidth = 32
)

func (m *Model) layout() {
	m.toolbar.SetRow(toolbarRow)
	m.toolbar.SetSize(m.width, 1)
	m.sidebar.SetSize(min(sidebarWidth, m.width/2), m.canvasHeight())
	m.confirm.SetSize(m.width, m.height)
	m.help.SetSize(m.width, m.height)
}

func (m *Model) canvasHeight() int {
	return max(m.height-chromeHeight, 0)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.theme.S()
	st := m.store.AppState()

	lines := make([]string, 0, m.height)
	lines = append(lines, m.toolbar.View(), s.Subtle.Render(render.Separator(m.width)))
	lines = append(lines, m.body(st)...)
	lines = append(lines, m.statusLine(st))
	view := strings.Join(lines, "\n")

	if p := m.activePopup(st); p != "" {
		view = popup.Compose(view, popup.Center(p, m.width, m.height), m.width)
	}
	return view
}

func (m *Model) activePopup(st appstate.State) string {
	switch {
	case st.DialogOpen(appstate.DialogClearCanvas):
		return m.confirm.View()
	case st.DialogOpen(appstate.DialogHelp):
		return m.help.View()
	}
	return ""
}

// body renders the canvas with the sidebar on the right when open.
func (m *Model) body(st appstate.State) []string {
	h := m.canvasHeight()
	side := m.sidebar.View(m.theme)
	var sideLines []string
	sideW := 0
	if side != "" {
		sideLines = strings.Split(side, "\n")
		sideW = lipgloss.Width(side)
	}
	canvas := m.canvas(st, m.width-sideW, h)
	for i := range canvas {
		if i < len(sideLines) {
			canvas[i] += sideLines[i]
		}
	}
	return canvas
}

func (m *Model) canvas(st appstate.State, width, height int) []string {
	s := m.theme.S()
	lines := make([]string, height)
	for i := range lines {
		row := ""
		if st.GridModeEnabled && !st.ZenModeEnabled {
			row = gridRow(width, i)
		}
		lines[i] = s.Subtle.Render(render.Pad(row, width))
	}

	visible := scene.NonDeleted(m.store.Elements())
	if len(visible) == 0 || height == 0 {
		if height > 1 {
			hint := render.Truncate("Empty canvas. Pick a tool, press ? for help.", width)
			lines[height/2] = s.Muted.Render(render.Pad(centered(hint, width), width))
		}
		return lines
	}
	for i, el := range visible {
		if i >= height {
			break
		}
		text := fmt.Sprintf("%s %s at (%d,%d) %dx%d", glyph(el.Type), el.Type, el.X, el.Y, el.Width, el.Height)
		lines[i] = s.Base.Render(render.Pad(render.Truncate(text, width), width))
	}
	return lines
}

func (m *Model) statusLine(st appstate.State) string {
	s := m.theme.S()
	left := m.theme.Wordmark("drawbar") + " " + s.Muted.Render(render.Truncate(st.Name, 24))
	if st.ViewModeEnabled {
		left += " " + s.Warning.Render("view")
	}
	if st.ZenModeEnabled {
		left += " " + s.Subtle.Render("zen")
	}

	right := s.Subtle.Render("? help")
	if m.status != "" {
		style := s.Success
		if m.statusErr {
			style = s.Error
		}
		right = style.Render(render.Truncate(m.status, max(m.width/2, 10)))
	}
	return render.TruncateStyled(render.Row(left, right, m.width), m.width)
}

func gridRow(width, y int) string {
	if y%2 == 1 {
		return ""
	}
	var b strings.Builder
	for x := range width {
		if x%4 == 0 {
			b.WriteRune('·')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func centered(s string, width int) string {
	pad := max((width-lipgloss.Width(s))/2, 0)
	return strings.Repeat(" ", pad) + s
}

var glyphs = map[scene.ElementType]string{
	scene.TypeRectangle: "□",
	scene.TypeEllipse:   "○",
	scene.TypeArrow:     "→",
	scene.TypeLine:      "─",
	scene.TypeFreedraw:  "✎",
	scene.TypeText:      "A",
}

func glyph(t scene.ElementType) string {
	if g, ok := glyphs[t]; ok {
		return g
	}
	return "?"
}
