package toolbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

// Update routes non-input messages to the controls.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case toolbutton.SettledMsg:
		for _, c := range m.controls {
			if c.InstanceID() == msg.InstanceID {
				return c.Update(msg)
			}
		}
		return toolbutton.Settle(msg, m.logger)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	cmds := make([]tea.Cmd, 0, len(m.controls))
	for _, c := range m.controls {
		cmds = append(cmds, c.Update(msg))
	}
	return tea.Batch(cmds...)
}

// HandleKey handles toolbar shortcuts and, while the toolbar is focused,
// focus navigation. It reports whether the key was consumed.
func (m *Model) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	a := m.keys.Resolve(msg.String())

	if tool, ok := strings.CutPrefix(string(a), "tool_"); ok {
		c := m.Control(toolIDPfx + tool)
		if c == nil {
			return false, nil
		}
		return true, c.Change()
	}

	if a == keymap.ActionExportScene {
		c := m.Control(ExportID)
		if !c.Visible() {
			return false, nil
		}
		return true, c.Click(toolbutton.PointerNone)
	}

	if !m.IsFocused() {
		return false, nil
	}
	switch a {
	case keymap.ActionFocusNext:
		m.moveFocus(1)
		return true, nil
	case keymap.ActionFocusPrev:
		m.moveFocus(-1)
		return true, nil
	case keymap.ActionActivate:
		if c := m.Focused(); c != nil {
			return true, c.Activate()
		}
		return true, nil
	}
	return false, nil
}

// SetFocused gives the toolbar keyboard focus.
func (m *Model) SetFocused(f bool) {
	m.Base.SetFocused(f)
	m.applyFocus()
}

// Focused returns the focused control, or nil.
func (m *Model) Focused() *toolbutton.Model {
	if !m.IsFocused() || m.focus < 0 || m.focus >= len(m.controls) {
		return nil
	}
	return m.controls[m.focus]
}

func (m *Model) moveFocus(delta int) {
	n := len(m.controls)
	for range n {
		m.focus = (m.focus + delta + n) % n
		if m.controls[m.focus].Visible() {
			break
		}
	}
	m.applyFocus()
}

func (m *Model) clampFocus() {
	if len(m.controls) == 0 {
		return
	}
	if m.focus >= len(m.controls) || !m.controls[m.focus].Visible() {
		m.focus = 0
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for i, c := range m.controls {
		c.SetFocused(m.IsFocused() && i == m.focus)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Some terminals report releases without a button.
	if msg.Button != tea.MouseButtonLeft &&
		(msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonNone) {
		return nil
	}
	hit := -1
	if msg.Y == m.row {
		hit = m.hitTest(msg.X)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.pressed = hit
		if hit < 0 {
			return nil
		}
		return m.controls[hit].PointerDown(toolbutton.PointerMouse)

	case tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = -1
		if pressed < 0 {
			return nil
		}
		c := m.controls[pressed]
		up := c.PointerUp()
		if hit != pressed {
			return up
		}
		if c.Props().Kind == toolbutton.Radio {
			return tea.Batch(c.Change(), up)
		}
		return c.Click(toolbutton.PointerMouse)
	}
	return nil
}
