package toolbar

import (
	"strings"

	"github.com/llehouerou/drawbar/internal/ui/render"
)

const gap = 1

// View renders the toolbar row.
func (m *Model) View() string {
	parts := make([]string, 0, len(m.controls))
	for _, c := range m.controls {
		if v := c.View(m.theme); v != "" {
			parts = append(parts, v)
		}
	}
	line := strings.Join(parts, strings.Repeat(" ", gap))
	if w := m.Width(); w > 0 {
		line = render.TruncateStyled(line, w)
	}
	return line
}

// hitTest returns the index of the control under column x, or -1.
func (m *Model) hitTest(x int) int {
	pos := 0
	for i, c := range m.controls {
		if !c.Visible() {
			continue
		}
		w := c.Width(m.theme)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + gap
	}
	return -1
}
