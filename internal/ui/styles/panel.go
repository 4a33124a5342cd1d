package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel for this theme, highlighted when focused.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
