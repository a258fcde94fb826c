// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Slide navigation
	ActionAdvance Action = "advance"
	ActionRetreat Action = "retreat"
	ActionFirst   Action = "first"
	ActionLast    Action = "last"

	// Presentation
	ActionExitFullscreen   Action = "exit_fullscreen"
	ActionToggleFullscreen Action = "toggle_fullscreen"
)
