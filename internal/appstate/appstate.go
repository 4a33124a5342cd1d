// Package appstate defines the shared application state read and written by actions.
package appstate

// Sidebar names and tabs.
const (
	DefaultSidebarName = "default"
	ChatTab            = "chat"
	LibraryTab         = "library"
)

// Dialog names.
const (
	DialogClearCanvas = "clearCanvas"
	DialogHelp        = "help"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Sidebar identifies the open sidebar and its active tab.
type Sidebar struct {
	Name string
	Tab  string
}

// Dialog identifies the open modal dialog.
type Dialog struct {
	Name string
}

// Tool is the active drawing tool.
type Tool struct {
	Type   string
	Locked bool
}

// State is the application state.
// Pointer fields use nil for "closed".
type State struct {
	OpenSidebar     *Sidebar
	OpenDialog      *Dialog
	GridModeEnabled bool
	ViewModeEnabled bool
	ZenModeEnabled  bool
	Theme           string
	ActiveTool      Tool
	Name            string
}

// Default returns the state a fresh canvas starts with.
func Default() State {
	return State{
		Theme:      ThemeLight,
		ActiveTool: Tool{Type: "selection"},
		Name:       "Untitled",
	}
}

// SidebarOpenOn reports whether the default sidebar is open on the given tab.
func (s State) SidebarOpenOn(tab string) bool {
	return s.OpenSidebar != nil &&
		s.OpenSidebar.Name == DefaultSidebarName &&
		s.OpenSidebar.Tab == tab
}

// DialogOpen reports whether the named dialog is open.
func (s State) DialogOpen(name string) bool {
	return s.OpenDialog != nil && s.OpenDialog.Name == name
}
