package keymap

import "strings"

// Help contexts, in the order the help popup lists them.
const (
	ContextNavigation   = "navigation"
	ContextPresentation = "presentation"
	ContextGlobal       = "global"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains every key binding, in help order.
var All = []Binding{
	// Navigation
	{ActionAdvance, []string{"right", "down"}, "Next slide", ContextNavigation},
	{ActionRetreat, []string{"left", "up"}, "Previous slide", ContextNavigation},
	{ActionFirst, []string{"home"}, "First slide", ContextNavigation},
	{ActionLast, []string{"end"}, "Last slide", ContextNavigation},

	// Presentation
	{ActionExitFullscreen, []string{"esc"}, "Exit fullscreen", ContextPresentation},
	{ActionToggleFullscreen, []string{"f"}, "Toggle fullscreen", ContextPresentation},

	// Global
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
}

var keyGlyphs = map[string]string{
	"right": "→",
	"left":  "←",
	"up":    "↑",
	"down":  "↓",
}

func displayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if g, ok := keyGlyphs[k]; ok {
			k = g
		}
		shown[i] = k
	}
	return strings.Join(shown, "/")
}
