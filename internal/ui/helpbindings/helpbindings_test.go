package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/drawbar/internal/keymap"
	"github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/testutil"
)

func newTestHelpPopup(width, height int) *testutil.PopupHarness {
	m := New(keymap.Default, nil)
	m.SetSize(width, height)
	return testutil.NewPopupHarness(m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	actionMsg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg")
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			h := newTestHelpPopup(80, 24)
			h.SendKey(key)
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	h := newTestHelpPopup(80, 12)
	m := h.Popup().(*Model)

	h.SendKey("down")
	h.SendKey("j")
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}

	h.SendKey("k")
	h.SendKey("up")
	h.SendKey("up")
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", m.scrollOffset)
	}
}

func TestHelpBindings_ScrollStopsAtEnd(t *testing.T) {
	h := newTestHelpPopup(80, 12)
	m := h.Popup().(*Model)

	for range len(m.lines) + 5 {
		h.SendKey("j")
	}

	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want %d", m.scrollOffset, m.maxScroll())
	}
}

func TestHelpBindings_ViewShowsCategoriesInOrder(t *testing.T) {
	h := newTestHelpPopup(80, 60)
	view := testutil.StripANSI(h.View())

	last := -1
	for _, label := range []string{"Help", "Global", "Toolbar", "Canvas", "Tools"} {
		idx := strings.Index(view, label)
		if idx < 0 {
			t.Fatalf("view missing %q", label)
		}
		if idx < last {
			t.Errorf("%q out of order", label)
		}
		last = idx
	}
	if !strings.Contains(view, "ctrl+f") {
		t.Error("view should list the chat key")
	}
	if strings.Contains(view, "j/k scroll") {
		t.Error("no scroll hint when everything fits")
	}
}

func TestHelpBindings_ScrollHint(t *testing.T) {
	h := newTestHelpPopup(80, 12)

	if !h.ViewContains("j/k scroll") {
		t.Error("expected scroll hint when content overflows")
	}
}

func TestHelpBindings_UnboundHidden(t *testing.T) {
	bindings := keymap.WithOverrides(keymap.Default, map[string][]string{"zenMode": {}})
	m := New(bindings, nil)
	m.SetSize(80, 60)

	if strings.Contains(testutil.StripANSI(m.View()), "Toggle zen mode") {
		t.Error("unbound action should not be listed")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New(keymap.Default, nil)

	if m.View() != "" {
		t.Error("expected empty view without a size")
	}
}
