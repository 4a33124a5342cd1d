package toolbutton

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	uiaction "github.com/llehouerou/drawbar/internal/ui/action"
)

// Source is the component name on emitted action messages.
const Source = "toolbutton"

// ClickEvent describes a click on a push control.
type ClickEvent struct {
	PointerType PointerType
}

// ChangeEvent is passed to a radio's OnChange. PointerType is the device
// that last pressed the control, or PointerNone for keyboard activation.
type ChangeEvent struct {
	PointerType PointerType
}

// PointerEvent is passed to a radio's OnPointerDown.
type PointerEvent struct {
	PointerType PointerType
}

// Task is awaitable click work. It runs off the update loop and must not
// touch shared state; its message is delivered back to the loop. A task
// that stops because ctx is done should return an action.Abort error.
type Task func(ctx context.Context) (tea.Msg, error)

// ClickFunc handles a click. A nil Task means the click completed
// synchronously and the control never shows loading.
type ClickFunc func(ClickEvent) (Task, error)

// SettledMsg carries the outcome of a Task back to its control.
type SettledMsg struct {
	InstanceID string
	ControlID  string
	Token      uint64
	Msg        tea.Msg
	Err        error
}

// Failed reports a click that failed with an error other than an abort.
type Failed struct {
	ID  string
	Err error
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "toolbutton.failed" }

type pointerResetMsg struct {
	instanceID string
	seq        uint64
}

// Settle turns a settled task into the command the host should run.
// Aborts are logged and swallowed. Hosts call it directly for settle
// messages whose control is gone so failures still surface.
func Settle(msg SettledMsg, logger *slog.Logger) tea.Cmd {
	return outcome(msg.ControlID, msg.Msg, msg.Err, logger)
}

func outcome(id string, follow tea.Msg, err error, logger *slog.Logger) tea.Cmd {
	if err != nil {
		if action.IsAborted(err) {
			logger.Warn("click aborted", "control", id, "error", err)
			return nil
		}
		return uiaction.Cmd(Source, Failed{ID: id, Err: err})
	}
	if follow == nil {
		return nil
	}
	return func() tea.Msg { return follow }
}
