// Package controls renders the bottom control strip: a progress bar, the
// previous/next buttons, one dot per slide and the slide counter.
package controls

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cinedeck/internal/ui/render"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// Height is the number of rows the strip occupies.
const Height = 2

const (
	prevLabel = "‹"
	nextLabel = "›"
	dotActive = "━━"
	dotIdle   = "●"
	gap       = "  "
)

// PrevMsg asks for the previous slide.
type PrevMsg struct{}

// NextMsg asks for the next slide.
type NextMsg struct{}

// JumpMsg asks for the slide at Index.
type JumpMsg struct{ Index int }

// region is a clickable column span on the button row.
type region struct {
	start, end int // [start, end)
	msg        tea.Msg
}

// Model is the control strip. Call SetState before View; HitTest uses the
// regions of the last View.
type Model struct {
	width   int
	current int
	total   int
	regions []region
}

// New creates an empty strip.
func New() Model {
	return Model{}
}

// SetWidth sets the strip width in cells.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetState records the current slide index and slide count.
func (m *Model) SetState(current, total int) {
	m.current = current
	m.total = total
}

// canPrev and canNext mirror the deck's bounds.
func (m *Model) canPrev() bool { return m.current > 0 }
func (m *Model) canNext() bool { return m.current < m.total-1 }

// View renders the strip.
func (m *Model) View() string {
	m.regions = m.regions[:0]
	if m.width <= 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.current+1) / float64(m.total)
	}
	bar := styles.GradientBar(m.width, ratio, t.Teal, t.Gold, t.FgSubtle)

	type part struct {
		text string
		msg  tea.Msg
	}
	var parts []part

	prev := s.Disabled.Render(prevLabel)
	var prevMsg tea.Msg
	if m.canPrev() {
		prev = s.Button.Render(prevLabel)
		prevMsg = PrevMsg{}
	}
	parts = append(parts, part{prev, prevMsg}, part{gap, nil})

	for i := range m.total {
		if i > 0 {
			parts = append(parts, part{" ", nil})
		}
		dot := s.Subtle.Render(dotIdle)
		var msg tea.Msg = JumpMsg{Index: i}
		if i == m.current {
			dot = lipgloss.NewStyle().Foreground(t.Teal).Bold(true).Render(dotActive)
			msg = nil
		}
		parts = append(parts, part{dot, msg})
	}

	next := s.Disabled.Render(nextLabel)
	var nextMsg tea.Msg
	if m.canNext() {
		next = s.Button.Render(nextLabel)
		nextMsg = NextMsg{}
	}
	parts = append(parts, part{gap, nil}, part{next, nextMsg})

	counter := s.Muted.Render(m.counter())
	parts = append(parts, part{gap, nil}, part{counter, nil})

	var row strings.Builder
	width := 0
	for _, p := range parts {
		width += lipgloss.Width(p.text)
	}
	offset := max((m.width-width)/2, 0)
	col := offset
	for _, p := range parts {
		w := lipgloss.Width(p.text)
		if p.msg != nil {
			m.regions = append(m.regions, region{start: col, end: col + w, msg: p.msg})
		}
		row.WriteString(p.text)
		col += w
	}

	line := strings.Repeat(" ", offset) + row.String()
	return bar + "\n" + render.Fit(line, m.width, 1)
}

func (m *Model) counter() string {
	if m.total == 0 {
		return "0 / 0"
	}
	return strconv.Itoa(m.current+1) + " / " + strconv.Itoa(m.total)
}

// HitTest maps a click at column x of strip row y to a message. Clicking the
// progress bar jumps to the slide under the pointer. It returns nil for
// misses, the current slide and disabled buttons.
func (m *Model) HitTest(x, y int) tea.Msg {
	if x < 0 || x >= m.width || m.total == 0 {
		return nil
	}
	if y == 0 {
		i := x * m.total / m.width
		if i == m.current {
			return nil
		}
		return JumpMsg{Index: i}
	}
	if y != Height-1 {
		return nil
	}
	for _, r := range m.regions {
		if x >= r.start && x < r.end {
			return r.msg
		}
	}
	return nil
}
