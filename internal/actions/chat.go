package actions

import (
	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
)

// ChatSearchInputID is the widget id of the chat sidebar search input.
const ChatSearchInputID = "chat-search-input"

// ToggleChatMenu opens the chat sidebar, focuses its search input when
// already open, and closes the sidebar when the input already has focus.
// It shares grid mode's host prop, checked state and tracking gate.
var ToggleChatMenu = action.Action{
	Name:     "chatMenu",
	Label:    "search.title",
	Keywords: []string{"chat"},
	ViewMode: true,
	Predicate: func(_ []scene.Element, _ appstate.State, props action.Props) bool {
		return props.GridModeEnabled == nil
	},
	Checked: func(s appstate.State) bool { return s.GridModeEnabled },
	TrackEvent: &action.TrackEvent{
		Category:  "chat_menu",
		Action:    "toggle",
		Predicate: func(s appstate.State) bool { return s.GridModeEnabled },
	},
	Perform: performToggleChatMenu,
}

func performToggleChatMenu(
	_ []scene.Element,
	state appstate.State,
	_ any,
	host action.Host,
) (action.Result, error) {
	if !state.SidebarOpenOn(appstate.ChatTab) {
		return action.Change(appstate.Patch{
			OpenSidebar: appstate.OpenSidebarOn(appstate.ChatTab),
			OpenDialog:  appstate.CloseDialog(),
		}, store.None), nil
	}

	input := widget(host, ChatSearchInputID)
	if input != nil && input.Focused() {
		return action.Change(appstate.Patch{
			OpenSidebar: appstate.CloseSidebar(),
		}, store.None), nil
	}

	if input != nil {
		input.Focus()
		input.Select()
	}
	return action.NoChange, nil
}

func widget(host action.Host, id string) action.Widget {
	if host == nil {
		return nil
	}
	return host.Widget(id)
}
