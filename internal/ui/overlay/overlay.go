// Package overlay composites styled text blocks on top of each other.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view, line by line. On each line,
// the span between the first and last non-space cell of the overlay replaces
// the base; blank overlay lines leave the base visible.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		// Visible bounds in display columns
		startCol := ansi.StringWidth(plainOverlay) - ansi.StringWidth(strings.TrimLeft(plainOverlay, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		baseLines[i] = splice(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Place draws block opaquely onto base with its top-left corner at (x, y).
// Cells of block that fall outside width are cut.
func Place(base, block string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		if x >= width {
			break
		}
		end := min(x+ansi.StringWidth(line), width)
		if end <= x {
			continue
		}
		baseLines[row] = splice(baseLines[row], ansi.Cut(line, 0, end-x), x, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start, end) of line with content.
func splice(line, content string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	result := ansi.Cut(line, 0, start) + content
	if end < width {
		result += ansi.Cut(line, end, width)
	}
	return result
}
