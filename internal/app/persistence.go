package app

import (
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/state"
	"github.com/llehouerou/drawbar/internal/store"
)

// persistPreferences saves the persisted fields of the state whenever
// they change. The state manager debounces the writes.
func persistPreferences(st *store.Store, mgr state.Interface) {
	last := state.PreferencesFrom(st.AppState())
	st.Subscribe(func(s appstate.State, _ []scene.Element) {
		prefs := state.PreferencesFrom(s)
		if prefs == last {
			return
		}
		last = prefs
		mgr.SavePreferences(prefs)
	})
}

// Restore builds the initial state from saved preferences. Unknown tools
// and themes fall back to the defaults.
func Restore(prefs *state.Preferences, valid func(tool string) bool) appstate.State {
	s := appstate.Default()
	if prefs == nil {
		return s
	}
	p := *prefs
	if p.ActiveTool != "" && !valid(p.ActiveTool) {
		p.ActiveTool = ""
		p.ToolLocked = false
	}
	if p.Theme != appstate.ThemeLight && p.Theme != appstate.ThemeDark {
		p.Theme = ""
	}
	return s.Merge(p.Patch())
}
