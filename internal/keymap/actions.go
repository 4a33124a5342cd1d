// Package keymap defines key bindings for the application.
package keymap

// Action names a key-triggerable command. Toolbar actions use their
// registry name so bindings and key tests line up.
type Action string

const (
	// App actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionCancel Action = "cancel"

	// Toolbar navigation
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionActivate  Action = "activate"

	// Registered actions
	ActionChatMenu    Action = "chatMenu"
	ActionGridMode    Action = "gridMode"
	ActionViewMode    Action = "viewMode"
	ActionZenMode     Action = "zenMode"
	ActionToggleTheme Action = "toggleTheme"
	ActionClearCanvas Action = "clearCanvas"
	ActionExportScene Action = "exportScene"

	// Tools
	ActionToolSelection Action = "tool_selection"
	ActionToolRectangle Action = "tool_rectangle"
	ActionToolEllipse   Action = "tool_ellipse"
	ActionToolArrow     Action = "tool_arrow"
	ActionToolLine      Action = "tool_line"
	ActionToolFreedraw  Action = "tool_freedraw"
	ActionToolText      Action = "tool_text"
)
