// Package actions holds the built-in toolbar actions.
package actions

import (
	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/keymap"
)

// Defaults returns the built-in actions in registration order.
func Defaults() []action.Action {
	return []action.Action{
		ToggleChatMenu,
		ToggleGridMode,
		ToggleViewMode,
		ToggleZenMode,
		ToggleTheme,
		ClearCanvas,
		SetActiveTool,
	}
}

// NewRegistry registers the built-in actions, wiring key tests from keys.
// A nil resolver uses the default bindings. It panics on a duplicate or
// malformed definition.
func NewRegistry(keys *keymap.Resolver) *action.Registry {
	if keys == nil {
		keys = keymap.NewResolver(keymap.Default)
	}
	r := action.NewRegistry()
	for _, def := range Defaults() {
		if test := keys.Test(keymap.Action(def.Name)); test != nil {
			def.KeyTest = test
		}
		r.MustRegister(def)
	}
	return r
}
