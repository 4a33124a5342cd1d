package actions

import (
	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
)

// ToggleGridMode shows or hides the canvas grid. Disabled when the host
// controls grid mode through props.
var ToggleGridMode = action.Action{
	Name:     "gridMode",
	Label:    "labels.toggleGrid",
	Keywords: []string{"snap"},
	ViewMode: true,
	Predicate: func(_ []scene.Element, _ appstate.State, props action.Props) bool {
		return props.GridModeEnabled == nil
	},
	Checked: func(s appstate.State) bool { return s.GridModeEnabled },
	TrackEvent: &action.TrackEvent{
		Category:  "canvas",
		Action:    "gridMode",
		Predicate: func(s appstate.State) bool { return s.GridModeEnabled },
	},
	Perform: func(_ []scene.Element, s appstate.State, _ any, _ action.Host) (action.Result, error) {
		return action.Change(appstate.Patch{
			GridModeEnabled: appstate.Set(!s.GridModeEnabled),
		}, store.None), nil
	},
}

// ToggleViewMode switches the canvas in and out of read-only mode.
var ToggleViewMode = action.Action{
	Name:     "viewMode",
	Label:    "labels.viewMode",
	Keywords: []string{"read", "readonly", "present"},
	ViewMode: true,
	Predicate: func(_ []scene.Element, _ appstate.State, props action.Props) bool {
		return props.ViewModeEnabled == nil
	},
	Checked: func(s appstate.State) bool { return s.ViewModeEnabled },
	TrackEvent: &action.TrackEvent{
		Category:  "canvas",
		Action:    "viewMode",
		Predicate: func(s appstate.State) bool { return s.ViewModeEnabled },
	},
	Perform: func(_ []scene.Element, s appstate.State, _ any, _ action.Host) (action.Result, error) {
		return action.Change(appstate.Patch{
			ViewModeEnabled: appstate.Set(!s.ViewModeEnabled),
		}, store.None), nil
	},
}

// ToggleZenMode hides everything but the canvas and toolbar.
var ToggleZenMode = action.Action{
	Name:     "zenMode",
	Label:    "buttons.zenMode",
	ViewMode: true,
	Predicate: func(_ []scene.Element, _ appstate.State, props action.Props) bool {
		return props.ZenModeEnabled == nil
	},
	Checked: func(s appstate.State) bool { return s.ZenModeEnabled },
	TrackEvent: &action.TrackEvent{
		Category:  "canvas",
		Action:    "zenMode",
		Predicate: func(s appstate.State) bool { return !s.ZenModeEnabled },
	},
	Perform: func(_ []scene.Element, s appstate.State, _ any, _ action.Host) (action.Result, error) {
		return action.Change(appstate.Patch{
			ZenModeEnabled: appstate.Set(!s.ZenModeEnabled),
		}, store.None), nil
	},
}

// ToggleTheme flips between the light and dark theme.
var ToggleTheme = action.Action{
	Name:     "toggleTheme",
	Label:    "buttons.darkMode",
	Keywords: []string{"dark", "light"},
	ViewMode: true,
	Predicate: func(_ []scene.Element, _ appstate.State, props action.Props) bool {
		return props.Theme == nil
	},
	Checked: func(s appstate.State) bool { return s.Theme == appstate.ThemeDark },
	TrackEvent: &action.TrackEvent{
		Category: "canvas",
		Action:   "toggleTheme",
	},
	Perform: func(_ []scene.Element, s appstate.State, _ any, _ action.Host) (action.Result, error) {
		next := appstate.ThemeDark
		if s.Theme == appstate.ThemeDark {
			next = appstate.ThemeLight
		}
		return action.Change(appstate.Patch{Theme: appstate.Set(next)}, store.None), nil
	},
}
