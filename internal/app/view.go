package app

import (
	"strings"

	"github.com/llehouerou/cinedeck/internal/ui/controls"
	"github.com/llehouerou/cinedeck/internal/ui/overlay"
	"github.com/llehouerou/cinedeck/internal/ui/popup"
	"github.com/llehouerou/cinedeck/internal/ui/render"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	bodyHeight := max(m.Height-controls.Height, 0)
	view := m.Slides.View(m.clock())

	if m.status.text != "" && bodyHeight > 0 {
		line := styles.T().S().Warning.Render(render.Truncate(m.status.text, m.Width-2))
		view = overlay.Place(view, line, 1, bodyHeight-1, m.Width)
	}

	m.Controls.SetState(m.Deck.Index(), m.Deck.Len())
	if bodyHeight > 0 {
		view += "\n"
	}
	view += m.Controls.View()

	if m.ShowHelp {
		box := m.Help.Box()
		x, y := popup.Origin(box, m.Width, m.Height)
		view = overlay.Place(view, box, x, y, m.Width)
	}

	return enforceHeight(view, m.Height)
}

// enforceHeight pads or cuts view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
