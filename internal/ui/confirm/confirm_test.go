package confirm

import (
	"testing"

	"github.com/llehouerou/drawbar/internal/ui/action"
	"github.com/llehouerou/drawbar/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm(context any) *testutil.PopupHarness {
	m := New(nil)
	m.SetSize(80, 24)
	m.Show("Clear canvas", "This will clear the whole canvas. Are you sure?", context)
	return testutil.NewPopupHarness(m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h := newTestConfirm(testContext)

			h.SendKey(tt.key)

			result := getResult(t, h)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if h.Popup().(*Model).Active() {
				t.Error("popup should close after an answer")
			}
		})
	}
}

func TestConfirm_OtherKeysIgnored(t *testing.T) {
	h := newTestConfirm(nil)

	h.SendKey("x")

	if h.LastCommand() != nil {
		t.Error("expected no command for unrelated key")
	}
	if !h.Popup().(*Model).Active() {
		t.Error("popup should stay open")
	}
}

func TestConfirm_InactiveIgnoresKeys(t *testing.T) {
	m := New(nil)
	h := testutil.NewPopupHarness(m)

	h.SendKey("y")

	if h.LastCommand() != nil {
		t.Error("inactive popup should not answer")
	}
}

func TestConfirm_View(t *testing.T) {
	h := newTestConfirm(nil)

	for _, want := range []string{"Clear canvas", "[y]es / [n]o"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q:\n%s", want, h.View())
		}
	}

	h.SendKey("n")
	if h.View() != "" {
		t.Error("closed popup should render nothing")
	}
}
