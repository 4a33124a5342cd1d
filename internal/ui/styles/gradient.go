package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors with no RGB value, such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Wordmark renders text in bold, shading each grapheme from the theme's
// primary to its secondary color.
func (t *Theme) Wordmark(text string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	base := lipgloss.NewStyle().Bold(true)
	if len(clusters) < 2 {
		return base.Foreground(t.Primary).Render(text)
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), t.Primary, t.Secondary) {
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// blend returns n colors from a to b, interpolated in HCL space.
func blend(n int, a, b lipgloss.Color) []colorful.Color {
	from, to := parse(a), parse(b)
	if n < 2 {
		return []colorful.Color{from}
	}
	out := make([]colorful.Color, n)
	out[0], out[n-1] = from, to
	for i := 1; i < n-1; i++ {
		out[i] = from.BlendHcl(to, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
