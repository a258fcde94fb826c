package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// floatInterval paces redraws when only the accent float is moving.
const floatInterval = 250 * time.Millisecond

// FrameCmd schedules the next frame after d.
func FrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForStderr delivers the next captured stderr line.
func waitForStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return stderrClosedMsg{}
		}
		return StderrMsg(line)
	}
}
