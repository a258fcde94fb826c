package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand colors
	Gold lipgloss.Color // titles, highlight callouts, progress end
	Teal lipgloss.Color // accents, active dot, progress start
	Dark lipgloss.Color // deck background

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Body text
	FgMuted  lipgloss.Color // Subtitles, counters
	FgSubtle lipgloss.Color // Disabled controls, inactive dots

	// Backgrounds
	BgDim    lipgloss.Color // Darkening layer over background media
	BgButton lipgloss.Color // Control strip buttons

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Slide title
	Subtitle  lipgloss.Style
	Bullet    lipgloss.Style // Bullet marker
	Highlight lipgloss.Style // Highlight callout text
	Brand     lipgloss.Style // "Presented by" mark
	Button    lipgloss.Style // Enabled prev/next
	Disabled  lipgloss.Style // Disabled prev/next
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Gold: lipgloss.Color("#f5c76a"),
	Teal: lipgloss.Color("#30f0ff"),
	Dark: lipgloss.Color("#02010a"),

	// Text hierarchy (cool grays)
	FgBase:   lipgloss.Color("#e6e8f0"),
	FgMuted:  lipgloss.Color("#9aa0b4"),
	FgSubtle: lipgloss.Color("#4a4e60"),

	BgDim:    lipgloss.Color("#000000"),
	BgButton: lipgloss.Color("#141426"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
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
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    lipgloss.NewStyle().Foreground(t.Gold).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Teal).Italic(true),
		Bullet:   lipgloss.NewStyle().Foreground(t.Teal).Bold(true),
		Highlight: lipgloss.NewStyle().
			Foreground(t.Gold).
			Bold(true),
		Brand: lipgloss.NewStyle().Foreground(t.FgMuted),
		Button: lipgloss.NewStyle().
			Foreground(t.Teal).
			Background(t.BgButton).
			Bold(true).
			Padding(0, 1),
		Disabled: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Background(t.BgButton).
			Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
