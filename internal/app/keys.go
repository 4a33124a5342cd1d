package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/app/handler"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/errmsg"
	"github.com/llehouerou/drawbar/internal/keymap"
)

// handleKey routes a key: open dialog, focused chat input, app keys,
// toolbar shortcuts and finally the registered actions.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.dialogOpen() {
		return m.handleDialogKey(msg)
	}
	_, cmd := handler.Chain(msg,
		m.handleInputKey,
		m.handleAppKey,
		m.handleToolbarKey,
		m.handleActionKey,
	)
	return cmd
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	st := m.store.AppState()
	var cmd tea.Cmd
	switch {
	case st.DialogOpen(appstate.DialogClearCanvas):
		_, cmd = m.confirm.Update(msg)
	case st.DialogOpen(appstate.DialogHelp):
		_, cmd = m.help.Update(msg)
	default:
		if m.keys.Resolve(msg.String()) == keymap.ActionCancel {
			m.closeDialog()
		}
	}
	return cmd
}

func (m *Model) handleInputKey(msg tea.KeyMsg) handler.Result {
	if !m.sidebar.Wants(msg) {
		return handler.NotHandled
	}
	return handler.Handled(m.sidebar.Update(msg))
}

func (m *Model) handleAppKey(msg tea.KeyMsg) handler.Result {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.toolbar.CancelAll()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.openDialog(appstate.DialogHelp)
		return handler.HandledNoCmd
	case keymap.ActionCancel:
		if m.toolbar.CancelAll() {
			m.setStatus("Cancelled")
			return handler.HandledNoCmd
		}
	}
	return handler.NotHandled
}

func (m *Model) handleToolbarKey(msg tea.KeyMsg) handler.Result {
	return handler.From(m.toolbar.HandleKey(msg))
}

func (m *Model) handleActionKey(msg tea.KeyMsg) handler.Result {
	handled, err := m.manager.HandleKey(msg)
	m.fail(errmsg.OpActionRun, msg.String(), err)
	return handler.From(handled, nil)
}
