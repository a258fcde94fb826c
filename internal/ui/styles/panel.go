package styles

import "github.com/charmbracelet/lipgloss"

var (
	highlightBorderColor = lipgloss.Color("#f5c76a")
	accentBorderColor    = lipgloss.Color("#30f0ff")

	highlightBoxStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderLeft(true).
				BorderTop(false).
				BorderRight(false).
				BorderBottom(false).
				BorderForeground(highlightBorderColor).
				PaddingLeft(1)

	accentBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentBorderColor)
)

// HighlightBox returns the style of the highlight callout: a gold bar on the left.
func HighlightBox() lipgloss.Style {
	return highlightBoxStyle
}

// AccentBox returns the frame drawn around the accent object.
func AccentBox() lipgloss.Style {
	return accentBoxStyle
}
