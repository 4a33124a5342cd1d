package actions

import (
	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
)

// ClearConfirmed is the form data sent by the confirm dialog.
type ClearConfirmed struct{}

// ClearCanvas asks for confirmation, then deletes every element as one
// undoable step.
var ClearCanvas = action.Action{
	Name:     "clearCanvas",
	Label:    "labels.clearCanvas",
	Keywords: []string{"reset", "delete"},
	Predicate: func(elements []scene.Element, _ appstate.State, _ action.Props) bool {
		return len(scene.NonDeleted(elements)) > 0
	},
	TrackEvent: &action.TrackEvent{
		Category:  "canvas",
		Action:    "clear",
		Predicate: func(s appstate.State) bool { return s.OpenDialog == nil },
	},
	Perform: func(elements []scene.Element, _ appstate.State, formData any, _ action.Host) (action.Result, error) {
		if _, ok := formData.(ClearConfirmed); !ok {
			return action.Change(appstate.Patch{
				OpenDialog: appstate.OpenDialogNamed(appstate.DialogClearCanvas),
			}, store.None), nil
		}
		return action.Change(appstate.Patch{
			OpenDialog: appstate.CloseDialog(),
		}, store.Capture).WithElements(scene.MarkDeleted(elements)), nil
	},
}
