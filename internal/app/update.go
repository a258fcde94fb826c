package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cinedeck/internal/keymap"
	"github.com/llehouerou/cinedeck/internal/ui/controls"
	"github.com/llehouerou/cinedeck/internal/ui/popup"
	"github.com/llehouerou/cinedeck/internal/ui/slideview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case FrameMsg:
		m.ticking = false
		m.Loop.Tick(time.Time(msg))
		m.collectDiagnostics()
		return m, m.scheduleFrame()

	case slideview.MetadataMsg:
		m.Slides.HandleMetadata(msg)
		m.collectDiagnostics()
		return m, m.scheduleFrame()

	case slideview.ImageMsg:
		m.Slides.HandleImage(msg)
		m.collectDiagnostics()
		return m, nil

	case StderrMsg:
		m.status.set(string(msg))
		m.logger.Debug("backend stderr", "line", string(msg))
		return m, waitForStderr(m.stderr)

	case stderrClosedMsg:
		return m, nil

	case popup.CloseMsg:
		m.ShowHelp = false
		return m, nil

	case controls.PrevMsg:
		return m.navigate(m.Deck.Retreat())

	case controls.NextMsg:
		return m.navigate(m.Deck.Advance())

	case controls.JumpMsg:
		return m.navigate(m.Deck.Jump(msg.Index))

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *Model) resize() {
	m.Slides.SetSize(m.Width, max(m.Height-controls.Height, 0))
	m.Controls.SetWidth(m.Width)
	m.Help.SetSize(m.Width, m.Height)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.interact()

	if m.ShowHelp {
		_, cmd := m.Help.Update(msg)
		return m, cmd
	}

	switch m.Resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.Slides.Unmount()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionAdvance:
		return m.navigate(m.Deck.Advance())
	case keymap.ActionRetreat:
		return m.navigate(m.Deck.Retreat())
	case keymap.ActionFirst:
		return m.navigate(m.Deck.First())
	case keymap.ActionLast:
		return m.navigate(m.Deck.Last())
	case keymap.ActionExitFullscreen:
		if !m.Fullscreen {
			return m, nil
		}
		m.Fullscreen = false
		return m, tea.ExitAltScreen
	case keymap.ActionToggleFullscreen:
		m.Fullscreen = !m.Fullscreen
		if m.Fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.interact()
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	top := m.Height - controls.Height
	if msg.Y < top {
		return m, nil
	}
	if hit := m.Controls.HitTest(msg.X, msg.Y-top); hit != nil {
		return m.Update(hit)
	}
	return m, nil
}

// interact records a user gesture. The first one unlocks autoplay and
// retries any rejected playback.
func (m *Model) interact() {
	if m.Gate.Allowed() {
		return
	}
	m.Gate.Unlock()
	m.status.clear()
	m.Slides.Resume()
	m.logger.Debug("autoplay unlocked")
}

// navigate remounts the slide view when the index changed.
func (m Model) navigate(changed bool) (tea.Model, tea.Cmd) {
	if !changed {
		return m, nil
	}
	mount := m.mountCurrent()
	return m, tea.Batch(mount, m.scheduleFrame())
}

func (m *Model) mountCurrent() tea.Cmd {
	cmd := m.Slides.Mount(m.Deck.Current(), m.clock())
	m.collectDiagnostics()
	m.logger.Info("slide shown", "index", m.Deck.Index(), "id", m.Deck.Current().ID)
	return cmd
}

func (m *Model) collectDiagnostics() {
	for _, d := range m.Slides.DrainDiagnostics() {
		m.status.set(d)
	}
}

func (m *Model) fastInterval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

// frameInterval returns how soon the next frame is needed, or zero when the
// screen is static.
func (m *Model) frameInterval() time.Duration {
	switch {
	case m.Loop.Pending() > 0, m.Slides.Animating(m.clock()):
		return m.fastInterval()
	case m.Slides.Floating():
		return floatInterval
	default:
		return 0
	}
}

// scheduleFrame keeps exactly one frame tick in flight while anything moves.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking {
		return nil
	}
	d := m.frameInterval()
	if d == 0 {
		return nil
	}
	m.ticking = true
	return FrameCmd(d)
}
