package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawbar/internal/ui/styles"
)

// Frame wraps content in a bordered box with an optional title and footer.
// maxWidth limits the outer width; zero fits the content.
func Frame(t *styles.Theme, title, content, footer string, maxWidth int) string {
	s := t.S()
	var parts []string
	if title != "" {
		parts = append(parts, s.Title.Render(title), "")
	}
	parts = append(parts, content)
	if footer != "" {
		parts = append(parts, "", s.Subtle.Render(footer))
	}
	body := strings.Join(parts, "\n")

	box := t.PanelStyle(true).Padding(0, 1)
	if maxWidth > 0 {
		inner := maxWidth - box.GetHorizontalFrameSize()
		if lipgloss.Width(body) > inner {
			box = box.Width(max(inner, 1))
		}
	}
	return box.Render(body)
}

// Center places box in the middle of a width x height area.
func Center(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Compose overlays top on base. On each line the span between the first
// and last non-blank column of top replaces the same columns of base.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		visible := strings.TrimSpace(plain)
		if visible == "" {
			continue
		}
		start := ansi.StringWidth(plain[:len(plain)-len(strings.TrimLeft(plain, " "))])
		end := start + ansi.StringWidth(visible)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		prefix := ansi.Truncate(under, start, "")
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		out := prefix + ansi.Cut(line, start, end)
		if end < width {
			out += ansi.Cut(under, end, width)
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}
