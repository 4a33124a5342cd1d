package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Export scene", "Export scene"},
		{"strips control chars", "Ex\x07port", "Export"},
		{"keeps tab", "a\tb", "a\tb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"drops invalid utf8", "a\xffb", "ab"},
		{"drops lone latin-1 byte", "caf\xe9", "caf"},
		{"drops truncated sequence", "a\xe2\x82b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "grid", 10, "grid"},
		{"exact", "grid", 4, "grid"},
		{"cut", "Toggle grid", 8, "Toggl..."},
		{"wide chars", "日本語テキスト", 8, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Failed to export scene")

	out := TruncateStyled(styled, 10)

	if w := lipgloss.Width(out); w > 10 {
		t.Errorf("width = %d, want <= 10", w)
	}
	if got := ansi.Strip(out); got != "Failed to…" {
		t.Errorf("text = %q", got)
	}
	if TruncateStyled("short", 10) != "short" {
		t.Error("short text should be unchanged")
	}
}

func TestRow(t *testing.T) {
	row := Row("left", "right", 20)
	if w := lipgloss.Width(row); w != 20 {
		t.Errorf("Row width = %d, want 20", w)
	}

	tight := Row("left", "right", 5)
	if tight != "left right" {
		t.Errorf("Row should keep one space when too narrow, got %q", tight)
	}
}

func TestPadAndSeparator(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Errorf("Pad = %q", got)
	}
	if got := Separator(3); got != "───" {
		t.Errorf("Separator = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
