// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a notification from a UI component.
// ActionType returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
type Msg struct {
	Source string // Component name: "toolbar", "toolbutton", "confirm", ...
	Action Action
}

// Cmd returns a command emitting a Msg for a.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}
