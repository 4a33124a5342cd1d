// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, ignoring styles.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line containing substr, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Key builds a key message from its bubbletea string form
// ("enter", "esc", "tab", "shift+tab", "ctrl+f", "a", ...).
func Key(s string) tea.KeyMsg {
	alt := false
	if rest, ok := strings.CutPrefix(s, "alt+"); ok && rest != "" {
		alt = true
		s = rest
	}
	for kt, name := range keyNames {
		if name == s {
			return tea.KeyMsg{Type: kt, Alt: alt}
		}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

var keyNames = map[tea.KeyType]string{
	tea.KeyEnter:    "enter",
	tea.KeyEsc:      "esc",
	tea.KeyTab:      "tab",
	tea.KeyShiftTab: "shift+tab",
	tea.KeySpace:    "space",
	tea.KeyUp:       "up",
	tea.KeyDown:     "down",
	tea.KeyLeft:     "left",
	tea.KeyRight:    "right",
	tea.KeyCtrlC:    "ctrl+c",
	tea.KeyCtrlE:    "ctrl+e",
	tea.KeyCtrlF:    "ctrl+f",
	tea.KeyCtrlG:    "ctrl+g",
	tea.KeyCtrlX:    "ctrl+x",
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Run executes cmd and every command nested in batch messages, returning
// the leaf messages in order. Nil messages are dropped.
func Run(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Run(c)...)
	}
	return out
}

// Find returns the first message of type T.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
