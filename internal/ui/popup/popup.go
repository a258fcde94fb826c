package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cinedeck/internal/ui/render"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	Background  lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Teal,
		Background:  t.Dark,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog represents a simple centered popup with title, content, and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Box renders the bordered dialog without positioning it.
func (p *Dialog) Box(maxWidth int) string {
	style := p.Style

	innerWidth := max(maxLineWidth(p.Content), lipgloss.Width(p.Title), lipgloss.Width(p.Footer)) + 2
	innerWidth = max(min(innerWidth, maxWidth-4), 1)

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)
	if p.Title != "" {
		lines = append(lines, render.Center(style.TitleStyle.Render(p.Title), innerWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		lines = append(lines, render.Fit(line, innerWidth, 1))
	}
	if p.Footer != "" {
		lines = append(lines, "", render.Center(style.FooterStyle.Render(p.Footer), innerWidth))
	}

	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		BorderBackground(style.Background).
		Background(style.Background).
		Padding(0, 1).
		Width(innerWidth + 2).
		Render(strings.Join(lines, "\n"))
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (p *Dialog) Render(termWidth, termHeight int) string {
	return Center(p.Box(termWidth), termWidth, termHeight)
}

// Center places box in the middle of a screen of the given size.
func Center(box string, screenW, screenH int) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Origin returns the top-left cell where Center would put box.
func Origin(box string, screenW, screenH int) (x, y int) {
	w, h := lipgloss.Size(box)
	return max((screenW-w)/2, 0), max((screenH-h)/2, 0)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
