package toolbutton

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawbar/internal/ui/render"
	"github.com/llehouerou/drawbar/internal/ui/styles"
)

// badgeKeys are the shortcuts that get the AI badge.
var badgeKeys = []string{"i", "c", "m"}

// HasBadge reports whether the control shows the AI badge.
func (m *Model) HasBadge() bool {
	k := m.props.AriaKeyShortcuts
	for _, b := range badgeKeys {
		if strings.EqualFold(k, b) {
			return true
		}
	}
	return false
}

// Text returns the unstyled caption.
func (m *Model) Text() string {
	p := m.props
	var parts []string
	if m.Busy() {
		parts = append(parts, m.spinner.View())
	} else if p.Icon != "" {
		parts = append(parts, p.Icon)
	}
	switch {
	case p.Label != "":
		parts = append(parts, p.Label)
	case p.ShowAriaLabel && p.AriaLabel != "":
		parts = append(parts, p.AriaLabel)
	case p.Icon == "" && p.AriaLabel != "":
		parts = append(parts, p.AriaLabel)
	}
	return render.Sanitize(strings.Join(parts, " "))
}

// Width returns the rendered cell width.
func (m *Model) Width(t *styles.Theme) int {
	return lipgloss.Width(m.View(t))
}

// View renders the control with the given theme.
func (m *Model) View(t *styles.Theme) string {
	if !m.Visible() {
		return ""
	}
	s := t.S()
	p := m.props

	style := s.Base
	switch {
	case m.Disabled():
		style = s.Disabled
	case p.Selected || p.Checked:
		style = s.Selected
	case m.focused:
		style = s.Focused
	case p.Kind == Icon:
		style = s.Muted
	}
	if m.focused && !m.Disabled() {
		style = style.Underline(true)
	}
	if p.Kind != Icon {
		style = style.Padding(0, padding(p.Size))
	}

	out := style.Render(m.Text())
	if p.KeyBindingLabel != "" {
		out += s.Key.Render(p.KeyBindingLabel)
	}
	if m.HasBadge() {
		out += s.Badge.Render("AI")
	}
	return out
}

func padding(size Size) int {
	if size == SizeSmall {
		return 0
	}
	return 1
}
