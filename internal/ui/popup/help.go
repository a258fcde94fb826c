package popup

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// Help lists key bindings in columns, one column per group.
type Help struct {
	groups [][]key.Binding
	model  help.Model
	width  int
	height int
}

// NewHelp creates a help popup for the given binding groups.
func NewHelp(groups ...[]key.Binding) *Help {
	t := styles.T()
	m := help.New()
	m.ShowAll = true
	m.Styles.FullKey = t.S().Bullet
	m.Styles.FullDesc = t.S().Base
	m.Styles.FullSeparator = t.S().Subtle
	return &Help{groups: groups, model: m}
}

func (h *Help) Init() tea.Cmd { return nil }

// Update closes the popup on any key press.
func (h *Help) Update(msg tea.Msg) (Popup, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return h, func() tea.Msg { return CloseMsg{} }
	}
	return h, nil
}

func (h *Help) SetSize(width, height int) {
	h.width, h.height = width, height
	h.model.Width = max(width-8, 0)
}

func (h *Help) View() string {
	return h.model.FullHelpView(h.groups)
}

// Box returns the bordered help dialog without positioning it.
func (h *Help) Box() string {
	d := New()
	d.Title = "Keys"
	d.Content = h.View()
	d.Footer = "press any key to close"
	return d.Box(h.width)
}

// Render returns the help dialog centered on screen.
func (h *Help) Render() string {
	return Center(h.Box(), h.width, h.height)
}
