package actions

import (
	"errors"
	"fmt"
	"slices"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
)

// ErrUnknownTool is returned when setActiveTool receives an unsupported tool.
var ErrUnknownTool = errors.New("actions: unknown tool")

// ToolSelection is the pointer tool; the rest create elements.
const ToolSelection = "selection"

// Tools lists the selectable tool types in toolbar order.
var Tools = []string{
	ToolSelection,
	string(scene.TypeRectangle),
	string(scene.TypeEllipse),
	string(scene.TypeArrow),
	string(scene.TypeLine),
	string(scene.TypeFreedraw),
	string(scene.TypeText),
}

// SetActiveTool switches the active tool. formData carries the tool type.
var SetActiveTool = action.Action{
	Name:  "setActiveTool",
	Label: "toolBar.tool",
	Perform: func(_ []scene.Element, s appstate.State, formData any, _ action.Host) (action.Result, error) {
		tool, ok := formData.(string)
		if !ok || !slices.Contains(Tools, tool) {
			return action.NoChange, fmt.Errorf("%w: %v", ErrUnknownTool, formData)
		}
		if s.ActiveTool.Type == tool {
			return action.NoChange, nil
		}
		return action.Change(appstate.Patch{
			ActiveTool: appstate.Set(appstate.Tool{Type: tool, Locked: s.ActiveTool.Locked}),
		}, store.None), nil
	},
}
