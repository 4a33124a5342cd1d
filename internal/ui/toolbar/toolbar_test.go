package toolbar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawbar/internal/action"
	"github.com/llehouerou/drawbar/internal/actions"
	"github.com/llehouerou/drawbar/internal/appstate"
	"github.com/llehouerou/drawbar/internal/dispatch"
	"github.com/llehouerou/drawbar/internal/export"
	"github.com/llehouerou/drawbar/internal/scene"
	"github.com/llehouerou/drawbar/internal/store"
	uiaction "github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/testutil"
	"github.com/llehouerou/drawbar/internal/ui/toolbutton"
)

func newToolbar(t *testing.T, opts ...Option) (*Model, *store.Store) {
	t.Helper()
	st := store.New(appstate.Default(), []scene.Element{
		{ID: "a", Type: scene.TypeRectangle},
		{ID: "b", Type: scene.TypeText, IsDeleted: true},
	})
	mgr := dispatch.New(actions.NewRegistry(nil), st)
	return New(mgr, st, opts...), st
}

func TestNew_BuildsControls(t *testing.T) {
	tb, _ := newToolbar(t)

	for _, tool := range actions.Tools {
		c := tb.Control(toolIDPfx + tool)
		require.NotNil(t, c, tool)
		assert.Equal(t, toolbutton.Radio, c.Props().Kind)
	}
	chat := tb.Control("chat")
	require.NotNil(t, chat)
	assert.Equal(t, toolbutton.ChatTestID, chat.Props().TestID)
	assert.True(t, chat.HasBadge())

	assert.True(t, tb.Control(toolIDPfx+actions.ToolSelection).Props().Checked)
	assert.Equal(t, "1", tb.Control(toolIDPfx+actions.ToolSelection).Props().KeyBindingLabel)
}

func TestHandleKey_ToolShortcut(t *testing.T) {
	tb, st := newToolbar(t)

	ok, cmd := tb.HandleKey(testutil.Key("r"))

	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, "rectangle", st.AppState().ActiveTool.Type)

	tb.Sync()
	assert.True(t, tb.Control(toolIDPfx+"rectangle").Props().Checked)
	assert.False(t, tb.Control(toolIDPfx+actions.ToolSelection).Props().Checked)
}

func TestHandleKey_NavigationNeedsFocus(t *testing.T) {
	tb, _ := newToolbar(t)

	ok, _ := tb.HandleKey(testutil.Key("tab"))
	assert.False(t, ok)

	tb.SetFocused(true)
	ok, _ = tb.HandleKey(testutil.Key("tab"))
	assert.True(t, ok)
	assert.Same(t, tb.Controls()[1], tb.Focused())

	tb.HandleKey(testutil.Key("shift+tab"))
	tb.HandleKey(testutil.Key("shift+tab"))
	assert.Same(t, tb.Controls()[len(tb.Controls())-1], tb.Focused())
}

func TestHandleKey_ActivateFocusedToggle(t *testing.T) {
	tb, st := newToolbar(t)
	tb.SetFocused(true)
	for tb.Focused().ID() != "gridMode" {
		tb.HandleKey(testutil.Key("tab"))
	}

	ok, _ := tb.HandleKey(testutil.Key("enter"))

	assert.True(t, ok)
	assert.True(t, st.AppState().GridModeEnabled)
	tb.Sync()
	assert.True(t, tb.Control("gridMode").Props().Checked)
}

func TestChatRadio_OpensSidebar(t *testing.T) {
	tb, st := newToolbar(t)

	tb.Control("chat").Change()

	assert.True(t, st.AppState().SidebarOpenOn(appstate.ChatTab))
	tb.Sync()
	assert.True(t, tb.Control("chat").Props().Checked)
}

func TestViewMode_DisablesTools(t *testing.T) {
	tb, st := newToolbar(t)
	st.Apply(appstate.Patch{ViewModeEnabled: appstate.Set(true)}, nil, store.None)
	tb.Sync()

	assert.True(t, tb.Control(toolIDPfx+"rectangle").Disabled())
	assert.False(t, tb.Control("viewMode").Disabled(), "view mode can be left")

	tb.HandleKey(testutil.Key("r"))
	assert.Equal(t, actions.ToolSelection, st.AppState().ActiveTool.Type)
}

func TestMouse_ClickRadio(t *testing.T) {
	tb, st := newToolbar(t)
	tb.SetRow(0)

	x := columnOf(tb, toolIDPfx+"ellipse")
	tb.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, toolbutton.PointerMouse, tb.Control(toolIDPfx+"ellipse").LastPointerType())

	tb.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, "ellipse", st.AppState().ActiveTool.Type)
}

func TestMouse_ReleaseElsewhereDoesNotSelect(t *testing.T) {
	tb, st := newToolbar(t)

	x := columnOf(tb, toolIDPfx+"ellipse")
	tb.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tb.Update(tea.MouseMsg{X: x, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	assert.Equal(t, actions.ToolSelection, st.AppState().ActiveTool.Type)
}

func TestMouse_OtherRowIgnored(t *testing.T) {
	tb, _ := newToolbar(t)
	tb.SetRow(2)

	cmd := tb.Update(tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	assert.Nil(t, cmd)
	assert.Equal(t, toolbutton.PointerNone, tb.Controls()[0].LastPointerType())
}

func TestExport_WritesFileAsync(t *testing.T) {
	dir := t.TempDir()
	tb, _ := newToolbar(t, WithExporter(export.New(dir)))

	ok, cmd := tb.HandleKey(testutil.Key("ctrl+e"))
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.True(t, tb.Busy())

	settled, found := testutil.Find[toolbutton.SettledMsg](testutil.Run(cmd))
	require.True(t, found)
	follow := tb.Update(settled)
	assert.False(t, tb.Busy())

	done, isDone := testutil.ExecuteCmd(follow).(export.Done)
	require.True(t, isDone)
	assert.Equal(t, 1, done.Elements)

	data, err := os.ReadFile(done.Path)
	require.NoError(t, err)
	var f export.File
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, "Untitled", f.Name)
	assert.Equal(t, filepath.Dir(done.Path), dir)
}

func TestExport_CancelIsSwallowed(t *testing.T) {
	tb, _ := newToolbar(t, WithExporter(export.New(t.TempDir())))

	_, cmd := tb.HandleKey(testutil.Key("ctrl+e"))
	require.True(t, tb.CancelAll())
	assert.False(t, tb.Busy())

	settled, found := testutil.Find[toolbutton.SettledMsg](testutil.Run(cmd))
	require.True(t, found)
	require.Error(t, settled.Err)
	assert.Nil(t, tb.Update(settled))
}

func TestExport_DisabledWithoutExporter(t *testing.T) {
	tb, _ := newToolbar(t)

	assert.True(t, tb.Control(ExportID).Disabled())
	_, cmd := tb.HandleKey(testutil.Key("ctrl+e"))
	assert.Nil(t, cmd)
}

func TestExport_HiddenInZenIgnoresShortcut(t *testing.T) {
	tb, st := newToolbar(t, WithExporter(export.New(t.TempDir())))
	st.Apply(appstate.Patch{ZenModeEnabled: appstate.Set(true)}, nil, store.None)
	tb.Sync()

	btn := tb.Control(ExportID)
	assert.False(t, btn.Visible())
	assert.True(t, btn.Disabled())

	ok, cmd := tb.HandleKey(testutil.Key("ctrl+e"))
	assert.False(t, ok)
	assert.Nil(t, cmd)
	assert.False(t, tb.Busy())
}

func TestChatRadio_DisabledWhenHostPinsGridMode(t *testing.T) {
	pinned := true
	st := store.New(appstate.Default(), nil)
	mgr := dispatch.New(actions.NewRegistry(nil), st,
		dispatch.WithProps(action.Props{GridModeEnabled: &pinned}))
	tb := New(mgr, st)

	chat := tb.Control("chat")
	assert.True(t, chat.Disabled())
	assert.Nil(t, chat.Change())
	assert.Nil(t, st.AppState().OpenSidebar)
}

func TestUpdate_OrphanSettleStillReportsFailure(t *testing.T) {
	tb, _ := newToolbar(t)

	cmd := tb.Update(toolbutton.SettledMsg{InstanceID: "gone", ControlID: "x", Err: assert.AnError})

	got, ok := testutil.ExecuteCmd(cmd).(uiaction.Msg)
	require.True(t, ok)
	assert.Equal(t, "x", got.Action.(toolbutton.Failed).ID)
}

func TestView_ShowsControls(t *testing.T) {
	tb, st := newToolbar(t)

	out := testutil.StripANSI(tb.View())
	assert.Contains(t, out, "Chat")
	assert.Contains(t, out, "Export")

	st.Apply(appstate.Patch{ZenModeEnabled: appstate.Set(true)}, nil, store.None)
	tb.Sync()
	assert.NotContains(t, testutil.StripANSI(tb.View()), "Export")
}

func TestView_TruncatesToWidth(t *testing.T) {
	tb, _ := newToolbar(t)
	tb.SetSize(20, 1)

	assert.LessOrEqual(t, testutil.MeasureWidth(tb.View()), 20)
}

// columnOf returns a column inside the control with the given id.
func columnOf(tb *Model, id string) int {
	pos := 0
	for _, c := range tb.Controls() {
		if !c.Visible() {
			continue
		}
		if c.ID() == id {
			return pos
		}
		pos += c.Width(tb.theme) + gap
	}
	return -1
}

func TestShortKey(t *testing.T) {
	tests := map[string]string{
		"ctrl+g": "^G",
		"alt+z":  "M-z",
		"alt+D":  "M-D",
		"1":      "1",
		"ctrl+":  "ctrl+",
	}
	for in, want := range tests {
		assert.Equal(t, want, ShortKey(in), in)
	}
}
