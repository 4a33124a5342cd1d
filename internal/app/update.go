package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/actions"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/errmsg"
	"github.com/llehouerou/drawbar/internal/export"
	"github.com/llehouerou/drawbar/internal/store"
	uiaction "github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/confirm"
	"github.com/llehouerou/drawbar/internal/ui/helpbindings"
	"github.com/llehouerou/drawbar/internal/ui/sidebar"
	"github.com/llehouerou/drawbar/internal/ui/toolbar"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if !m.dialogOpen() {
			cmd = m.toolbar.Update(msg)
		}

	case uiaction.Msg:
		cmd = m.handleAction(msg)

	case export.Done:
		m.logger.Info("scene exported", "path", msg.Path, "elements", msg.Elements, "bytes", msg.Bytes)
		m.setStatus("Exported %d elements (%s) to %s", msg.Elements, msg.Size(), msg.Path)

	default:
		cmd = tea.Batch(m.toolbar.Update(msg), m.sidebar.Update(msg))
	}
	m.sync()
	return m, cmd
}

func (m *Model) handleAction(msg uiaction.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case confirm.Result:
		if !a.Confirmed {
			m.closeDialog()
			return nil
		}
		m.run("clearCanvas", actions.ClearConfirmed{})

	case helpbindings.Close:
		m.closeDialog()

	case toolbutton.Failed:
		op := errmsg.OpActionRun
		if a.ID == toolbar.ExportID {
			op = errmsg.OpSceneExport
		}
		m.fail(op, a.ID, a.Err)

	case sidebar.Submitted:
		m.logger.Info("chat query", "length", len(a.Query))
		m.setStatus("Asked: %s", a.Query)

	default:
		m.logger.Debug("unhandled action", "source", msg.Source, "type", msg.Action.ActionType())
	}
	return nil
}

// run executes a registered action from the UI and reports failures.
func (m *Model) run(name string, formData any) {
	err := m.manager.ExecuteAction(action.ByName(name), action.SourceUI, formData)
	m.fail(errmsg.OpActionRun, name, err)
}

func (m *Model) dialogOpen() bool {
	return m.store.AppState().OpenDialog != nil
}

func (m *Model) openDialog(name string) {
	m.store.Apply(appstate.Patch{OpenDialog: appstate.OpenDialogNamed(name)}, nil, store.None)
}

func (m *Model) closeDialog() {
	m.store.Apply(appstate.Patch{OpenDialog: appstate.CloseDialog()}, nil, store.None)
}
