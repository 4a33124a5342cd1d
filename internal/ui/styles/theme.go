package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // selected tools, focused controls
	Secondary lipgloss.Color // promo badge

	// Text hierarchy (most to least prominent)
	FgBase     lipgloss.Color
	FgMuted    lipgloss.Color
	FgSubtle   lipgloss.Color
	FgOnAccent lipgloss.Color // text drawn over Primary/Secondary

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style // checked radio / selected button
	Focused  lipgloss.Style // keyboard focus ring
	Disabled lipgloss.Style
	Badge    lipgloss.Style
	Key      lipgloss.Style // key binding hints
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var darkTheme = Theme{
	Name:        "dark",
	Primary:     lipgloss.Color("#a8a5ff"),
	Secondary:   lipgloss.Color("#e8590c"),
	FgBase:      lipgloss.Color("#e3e3e8"),
	FgMuted:     lipgloss.Color("#9a9aa3"),
	FgSubtle:    lipgloss.Color("#5c5c66"),
	FgOnAccent:  lipgloss.Color("#121212"),
	BgBase:      lipgloss.Color("#121212"),
	BgCursor:    lipgloss.Color("#2e2d39"),
	Border:      lipgloss.Color("#5c5c66"),
	BorderFocus: lipgloss.Color("#a8a5ff"),
	Success:     lipgloss.Color("#40c057"),
	Error:       lipgloss.Color("#ff6b6b"),
	Warning:     lipgloss.Color("#fab005"),
}

var lightTheme = Theme{
	Name:        "light",
	Primary:     lipgloss.Color("#6965db"),
	Secondary:   lipgloss.Color("#e8590c"),
	FgBase:      lipgloss.Color("#1b1b1f"),
	FgMuted:     lipgloss.Color("#5c5c66"),
	FgSubtle:    lipgloss.Color("#9a9aa3"),
	FgOnAccent:  lipgloss.Color("#ffffff"),
	BgBase:      lipgloss.Color("#ffffff"),
	BgCursor:    lipgloss.Color("#e0dfff"),
	Border:      lipgloss.Color("#b2aeff"),
	BorderFocus: lipgloss.Color("#6965db"),
	Success:     lipgloss.Color("#2f9e44"),
	Error:       lipgloss.Color("#e03131"),
	Warning:     lipgloss.Color("#f08c00"),
}

// T returns the default (dark) theme.
func T() *Theme {
	return &darkTheme
}

// Named returns the theme with the given name, falling back to dark.
func Named(name string) *Theme {
	if name == lightTheme.Name {
		return &lightTheme
	}
	return &darkTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selected: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.FgOnAccent).
			Bold(true),
		Focused: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Faint(true),
		Badge: lipgloss.NewStyle().
			Background(t.Secondary).
			Foreground(t.FgOnAccent).
			Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
