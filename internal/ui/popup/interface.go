// Package popup defines modal dialogs and how they are drawn over the
// canvas.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for modal popup components.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the framed popup, not yet centered.
	View() string

	// SetSize sets the available screen area.
	SetSize(width, height int)
}
