package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be empty")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without a command")
	}

	cmd := func() tea.Msg { return "x" }
	if r := Handled(cmd); !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should keep the command")
	}
	if r := From(false, cmd); r.Handled {
		t.Error("From(false) should not be handled")
	}
}

func TestChain(t *testing.T) {
	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}
	var calls []string
	record := func(name string, r Result) Handler {
		return func(msg tea.KeyMsg) Result {
			if msg.String() != "a" {
				t.Errorf("handler %s got %q", name, msg.String())
			}
			calls = append(calls, name)
			return r
		}
	}

	t.Run("first claimer wins", func(t *testing.T) {
		calls = nil
		want := func() tea.Msg { return "second" }
		handled, cmd := Chain(key,
			record("first", NotHandled),
			record("second", Handled(want)),
			record("third", HandledNoCmd),
		)
		if !handled {
			t.Fatal("expected handled")
		}
		if got := cmd(); got != "second" {
			t.Errorf("cmd() = %v, want second", got)
		}
		if len(calls) != 2 {
			t.Errorf("calls = %v, want [first second]", calls)
		}
	})

	t.Run("none claim", func(t *testing.T) {
		calls = nil
		handled, cmd := Chain(key, record("first", NotHandled), record("second", NotHandled))
		if handled || cmd != nil {
			t.Error("expected not handled with nil cmd")
		}
		if len(calls) != 2 {
			t.Errorf("calls = %v, want both", calls)
		}
	})

	t.Run("empty chain", func(t *testing.T) {
		if handled, _ := Chain(key); handled {
			t.Error("empty chain should not handle")
		}
	})
}
