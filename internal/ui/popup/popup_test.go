package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialog_Box(t *testing.T) {
	d := New()
	d.Title = "Keys"
	d.Content = "→ next\n← previous"
	d.Footer = "close"

	box := ansi.Strip(d.Box(80))

	assert.Contains(t, box, "Keys")
	assert.Contains(t, box, "→ next")
	assert.Contains(t, box, "← previous")
	assert.Contains(t, box, "close")

	w, _ := lipgloss.Size(box)
	for line := range strings.SplitSeq(box, "\n") {
		assert.Equal(t, w, ansi.StringWidth(line))
	}
}

func TestDialog_BoxRespectsMaxWidth(t *testing.T) {
	d := New()
	d.Content = strings.Repeat("x", 200)

	w, _ := lipgloss.Size(d.Box(40))
	assert.LessOrEqual(t, w, 40)
}

func TestDialog_RenderIsCentered(t *testing.T) {
	d := New()
	d.Content = "hi"

	out := d.Render(40, 11)
	w, h := lipgloss.Size(out)
	assert.Equal(t, 40, w)
	assert.Equal(t, 11, h)

	x, y := Origin(d.Box(40), 40, 11)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Greater(t, len(lines), y)
	assert.Equal(t, "╭", string([]rune(lines[y])[x]))
}

func TestHelp_ViewAndClose(t *testing.T) {
	h := NewHelp([]key.Binding{
		key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Next slide")),
	})
	h.SetSize(60, 20)

	assert.Contains(t, ansi.Strip(h.View()), "Next slide")
	assert.Contains(t, ansi.Strip(h.Render()), "Keys")

	_, cmd := h.Update(tea.WindowSizeMsg{})
	assert.Nil(t, cmd)

	_, cmd = h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
}
