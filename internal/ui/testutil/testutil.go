// Package testutil drives bubbletea models in tests.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var specialKeys = map[string]tea.KeyType{
	"right":  tea.KeyRight,
	"left":   tea.KeyLeft,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"esc":    tea.KeyEscape,
	"enter":  tea.KeyEnter,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
}

// Key builds the key message whose String() is name.
func Key(name string) tea.KeyMsg {
	if t, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Click builds a left-button press at (x, y).
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

// Harness feeds messages to a model and keeps the commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m.
func NewHarness(m tea.Model) *Harness {
	return &Harness{model: m}
}

// Model returns the current model.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Send delivers msg and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends the named keys in order.
func (h *Harness) Press(names ...string) {
	for _, n := range names {
		h.Send(Key(n))
	}
}

// Click sends a left click at (x, y).
func (h *Harness) Click(x, y int) tea.Cmd {
	return h.Send(Click(x, y))
}

// Commands returns every command collected so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// View returns the model's view without styling.
func (h *Harness) View() string {
	return StripANSI(h.model.View())
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
// Only use it on commands that return immediately.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Column returns the display column where substr starts on line, or -1.
func Column(line, substr string) int {
	i := strings.Index(line, substr)
	if i < 0 {
		return -1
	}
	return ansi.StringWidth(line[:i])
}
