package toolbar

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/actions"
	"github.com/llehouerou/drawbar/internal/keymap"
	uiaction "github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

// Registry names the toolbar invokes.
const (
	chatAction = "chatMenu"
	toolAction = "setActiveTool"
)

// ExportID is the id of the export button.
const ExportID = "exportScene"

const (
	toolGroup = "tool"
	toolIDPfx = "tool-"
)

var toolIcons = map[string]string{
	actions.ToolSelection: "↖",
	"rectangle":           "□",
	"ellipse":             "○",
	"arrow":               "→",
	"line":                "─",
	"freedraw":            "✎",
	"text":                "A",
}

// toggle is an icon button bound to a registered action of the same name.
type toggle struct {
	name  string
	icon  string
	label string
}

var toggles = []toggle{
	{"gridMode", "#", "Grid"},
	{"zenMode", "◎", "Zen"},
	{"viewMode", "◉", "View"},
	{"toggleTheme", "◐", "Theme"},
	{"clearCanvas", "✕", "Clear"},
}

func (m *Model) build() []*toolbutton.Model {
	opts := []toolbutton.Option{
		toolbutton.WithExecutor(m.dispatcher),
		toolbutton.WithFrame(m.frame),
		toolbutton.WithLogger(m.logger),
	}
	m.toolOf = make(map[string]string, len(actions.Tools))

	var out []*toolbutton.Model
	for _, tool := range actions.Tools {
		id := toolIDPfx + tool
		m.toolOf[id] = tool
		out = append(out, toolbutton.New(toolbutton.Props{
			Kind:            toolbutton.Radio,
			ID:              id,
			TestID:          "toolbar-" + tool,
			Name:            toolGroup,
			Icon:            toolIcons[tool],
			AriaLabel:       tool,
			Title:           tool,
			KeyBindingLabel: m.hint(toolKey(tool)),
			Size:            m.size,
			OnChange:        m.selectTool(tool),
		}, opts...))
	}

	out = append(out, toolbutton.New(toolbutton.Props{
		Kind:             toolbutton.Radio,
		ID:               "chat",
		TestID:           toolbutton.ChatTestID,
		Name:             toolGroup,
		Icon:             "✦",
		Label:            "Chat",
		AriaLabel:        "Chat",
		AriaKeyShortcuts: "c",
		KeyBindingLabel:  m.hint(keymap.ActionChatMenu),
		Size:             m.size,
	}, opts...))

	for _, t := range toggles {
		out = append(out, toolbutton.New(toolbutton.Props{
			Kind:            toolbutton.Icon,
			ID:              t.name,
			TestID:          "toolbar-" + t.name,
			Icon:            t.icon,
			AriaLabel:       t.label,
			Title:           t.label,
			KeyBindingLabel: m.hint(keymap.Action(t.name)),
			Size:            m.size,
			OnClick:         m.run(t.name),
		}, opts...))
	}

	out = append(out, toolbutton.New(toolbutton.Props{
		Kind:            toolbutton.Button,
		ID:              ExportID,
		TestID:          "toolbar-export",
		Icon:            "⇩",
		Label:           "Export",
		AriaLabel:       "Export scene",
		KeyBindingLabel: m.hint(keymap.ActionExportScene),
		Size:            m.size,
		OnClick:         m.exportScene,
	}, opts...))
	return out
}

func toolKey(tool string) keymap.Action {
	return keymap.Action("tool_" + tool)
}

// hint returns the first key bound to a in short form.
func (m *Model) hint(a keymap.Action) string {
	keys := m.keys.KeysFor(a)
	if len(keys) == 0 {
		return ""
	}
	return ShortKey(keys[0])
}

// ShortKey abbreviates a key for display: "ctrl+g" is "^G", "alt+z" is "M-z".
func ShortKey(key string) string {
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && rest != "" {
		return "^" + strings.ToUpper(rest)
	}
	if rest, ok := strings.CutPrefix(key, "alt+"); ok && rest != "" {
		return "M-" + rest
	}
	return key
}

func (m *Model) run(name string) toolbutton.ClickFunc {
	return func(toolbutton.ClickEvent) (toolbutton.Task, error) {
		return nil, m.dispatcher.ExecuteAction(action.ByName(name), action.SourceUI, nil)
	}
}

func (m *Model) selectTool(tool string) func(toolbutton.ChangeEvent) tea.Cmd {
	return func(e toolbutton.ChangeEvent) tea.Cmd {
		m.logger.Debug("select tool", "tool", tool, "pointer", string(e.PointerType))
		err := m.dispatcher.ExecuteAction(action.ByName(toolAction), action.SourceUI, tool)
		if err != nil {
			return uiaction.Cmd(toolbutton.Source, toolbutton.Failed{ID: toolIDPfx + tool, Err: err})
		}
		return nil
	}
}

// exportScene snapshots the scene on the update loop and writes it from
// the task.
func (m *Model) exportScene(toolbutton.ClickEvent) (toolbutton.Task, error) {
	if m.exporter == nil {
		return nil, ErrNoExporter
	}
	name := m.scene.AppState().Name
	elements := m.scene.Elements()
	exp := m.exporter
	return func(ctx context.Context) (tea.Msg, error) {
		done, err := exp.Write(ctx, name, elements)
		if err != nil {
			return nil, err
		}
		return done, nil
	}, nil
}
