// Package app is the root bubbletea model of the presenter.
package app

import "time"

// FrameMsg drives one tick of the frame loop.
type FrameMsg time.Time

// StderrMsg carries a line an audio backend wrote to stderr.
type StderrMsg string

// stderrClosedMsg ends the stderr listener.
type stderrClosedMsg struct{}
