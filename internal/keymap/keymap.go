package keymap

import "slices"

// Binding maps keys to an action, with help text.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "toolbar", "canvas", "tools"
}

// Default contains the built-in bindings, also used for help generation.
var Default = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionCancel, []string{"esc"}, "Cancel running task", "global"},

	// Toolbar
	{ActionFocusNext, []string{"tab", "right"}, "Next button", "toolbar"},
	{ActionFocusPrev, []string{"shift+tab", "left"}, "Previous button", "toolbar"},
	{ActionActivate, []string{"enter", "space"}, "Press button", "toolbar"},
	{ActionExportScene, []string{"ctrl+e"}, "Export scene", "toolbar"},

	// Canvas
	{ActionChatMenu, []string{"ctrl+f"}, "Toggle chat sidebar", "canvas"},
	{ActionGridMode, []string{"ctrl+g"}, "Toggle grid", "canvas"},
	{ActionViewMode, []string{"alt+r"}, "Toggle view mode", "canvas"},
	{ActionZenMode, []string{"alt+z"}, "Toggle zen mode", "canvas"},
	{ActionToggleTheme, []string{"alt+D"}, "Toggle theme", "canvas"},
	{ActionClearCanvas, []string{"ctrl+x"}, "Clear canvas", "canvas"},

	// Tools
	{ActionToolSelection, []string{"1", "v"}, "Selection", "tools"},
	{ActionToolRectangle, []string{"2", "r"}, "Rectangle", "tools"},
	{ActionToolEllipse, []string{"3", "o"}, "Ellipse", "tools"},
	{ActionToolArrow, []string{"4", "a"}, "Arrow", "tools"},
	{ActionToolLine, []string{"5", "l"}, "Line", "tools"},
	{ActionToolFreedraw, []string{"6", "p"}, "Draw", "tools"},
	{ActionToolText, []string{"7", "t"}, "Text", "tools"},
}

// ByContext returns key bindings filtered by context.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithOverrides returns a copy of bindings where each action named in
// overrides has its keys replaced. An empty key list unbinds the action.
func WithOverrides(bindings []Binding, overrides map[string][]string) []Binding {
	result := make([]Binding, len(bindings))
	for i, b := range bindings {
		if keys, ok := overrides[string(b.Action)]; ok {
			b.Keys = slices.Clone(keys)
		} else {
			b.Keys = slices.Clone(b.Keys)
		}
		result[i] = b
	}
	return result
}
