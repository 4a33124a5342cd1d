package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/ui/popup"
)

// Component is a UI element updated in place.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
}

type recorder struct {
	cmds []tea.Cmd
}

func (r *recorder) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		r.cmds = append(r.cmds, cmd)
	}
	return cmd
}

// Commands returns all commands collected since creation or the last
// ClearCommands.
func (r *recorder) Commands() []tea.Cmd { return r.cmds }

// LastCommand returns the most recent command, or nil if none.
func (r *recorder) LastCommand() tea.Cmd {
	if len(r.cmds) == 0 {
		return nil
	}
	return r.cmds[len(r.cmds)-1]
}

// ClearCommands clears the collected commands.
func (r *recorder) ClearCommands() { r.cmds = nil }

// Harness drives a Component, recording the commands it returns.
type Harness struct {
	recorder
	c Component
}

// NewHarness wraps c.
func NewHarness(c Component) *Harness {
	return &Harness{c: c}
}

// SendMsg sends msg to the component and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	return h.record(h.c.Update(msg))
}

// SendKey sends a key in its bubbletea string form.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// Record adds a command produced outside Update, such as a click.
func (h *Harness) Record(cmd tea.Cmd) tea.Cmd {
	return h.record(cmd)
}

// Deliver runs cmd and sends every resulting message back to the
// component. It returns the commands those updates produced.
func (h *Harness) Deliver(cmd tea.Cmd) []tea.Cmd {
	var out []tea.Cmd
	for _, msg := range Run(cmd) {
		if c := h.SendMsg(msg); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// PopupHarness wraps a popup for testing.
type PopupHarness struct {
	recorder
	popup popup.Popup
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

// Popup returns the underlying popup.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// SetSize sets the popup dimensions.
func (h *PopupHarness) SetSize(width, height int) { h.popup.SetSize(width, height) }

// View returns the popup's rendered content.
func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg sends msg to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.record(cmd)
}

// SendKey sends a key in its bubbletea string form.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// ViewContains checks if the popup's view contains substr on some line.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
