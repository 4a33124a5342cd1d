package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawbar/internal/ui/styles"
)

func TestFrame(t *testing.T) {
	out := ansi.Strip(Frame(styles.T(), "Title", "body", "footer", 0))

	for _, want := range []string{"Title", "body", "footer", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("Frame output missing %q:\n%s", want, out)
		}
	}
}

func TestFrame_MaxWidth(t *testing.T) {
	out := Frame(styles.T(), "", strings.Repeat("x", 80), "", 30)

	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("line width %d exceeds 30", w)
		}
	}
}

func TestCenter(t *testing.T) {
	out := Center("ab", 6, 3)
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "  ab  " {
		t.Errorf("middle line = %q", lines[1])
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		base string
		top  string
		want string
	}{
		{"replaces span", "abcdef", "  XY", "abXYef"},
		{"blank top line keeps base", "abc\ndef", "   \n X", "abc\ndXf   "},
		{"pads short base", "ab", "    Z", "ab  Z "},
		{"extra top lines ignored", "abc", "X\nY", "Xbc   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(Compose(tt.base, tt.top, 6)); got != tt.want {
				t.Errorf("Compose = %q, want %q", got, tt.want)
			}
		})
	}
}
