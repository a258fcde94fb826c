// Package slideview renders one slide and owns the media elements it plays.
package slideview

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cinedeck/internal/catalog"
	"github.com/llehouerou/cinedeck/internal/errmsg"
	"github.com/llehouerou/cinedeck/internal/media"
	"github.com/llehouerou/cinedeck/internal/pingpong"
	"github.com/llehouerou/cinedeck/internal/ui/imageview"
)

const probeTimeout = 10 * time.Second

// Config wires a slide view to the shared playback machinery.
type Config struct {
	Controller       *pingpong.Controller
	Prober           *media.Prober
	Gate             *media.Gate
	Images           *imageview.Renderer
	Brand            string
	FallbackDuration float64 // seconds; 0 leaves failed clips without metadata
	AudioEnabled     bool
	Volume           float64
	Logger           *slog.Logger
	Clock            func() time.Time
}

// clipMount is a clip together with the session driving it.
type clipMount struct {
	clip    *media.Clip
	session *pingpong.Session
}

type trackMount struct {
	track   *media.Track
	session *pingpong.Session
}

// Model is the slide renderer. Media mutation happens only on the UI loop.
type Model struct {
	cfg Config

	slide      catalog.Slide
	mounted    bool
	generation uint64
	mountedAt  time.Time
	reveal     timeline

	background *clipMount
	accent     *clipMount
	ambience   *trackMount

	diagnostics []string
	width       int
	height      int
}

// New creates an empty slide view.
func New(cfg Config) *Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Images == nil {
		cfg.Images = imageview.New("#02010a")
	}
	if cfg.Prober == nil {
		cfg.Prober = media.NewProber(nil)
	}
	return &Model{cfg: cfg}
}

// SetSize sets the area the slide is drawn into.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Slide returns the mounted slide.
func (m *Model) Slide() catalog.Slide { return m.slide }

// Mounted reports whether a slide is mounted.
func (m *Model) Mounted() bool { return m.mounted }

// Generation identifies the current mount.
func (m *Model) Generation() uint64 { return m.generation }

// Mount replaces the displayed slide. The previous slide's sessions are
// detached before any new element is created. The returned command probes
// clip durations off the UI loop.
func (m *Model) Mount(s catalog.Slide, now time.Time) tea.Cmd {
	m.Unmount()

	m.generation++
	m.slide = s
	m.mounted = true
	m.mountedAt = now
	m.reveal = newTimeline(s)

	var cmds []tea.Cmd
	if s.IsVideo() {
		m.background = m.attachClip(s.MediaSrc)
		cmds = append(cmds, m.probeCmd(SlotBackground, s.MediaSrc))
	} else {
		cmds = append(cmds, m.preloadCmd(s.MediaSrc))
	}
	switch {
	case s.AccentIsVideo():
		m.accent = m.attachClip(s.AccentSrc)
		cmds = append(cmds, m.probeCmd(SlotAccent, s.AccentSrc))
	case s.HasAccent():
		cmds = append(cmds, m.preloadCmd(s.AccentSrc))
	}
	if s.Ambience != "" && m.cfg.AudioEnabled {
		m.attachAmbience(s.Ambience)
	}

	m.cfg.Logger.Debug("slide mounted",
		"id", s.ID,
		"generation", m.generation,
		"background_video", m.background != nil,
		"accent_video", m.accent != nil,
		"ambience", m.ambience != nil,
	)
	return tea.Batch(cmds...)
}

func (m *Model) attachClip(src string) *clipMount {
	clip := media.NewClip(src, media.WithGate(m.cfg.Gate), media.WithClock(m.cfg.Clock))
	return &clipMount{clip: clip, session: m.cfg.Controller.Attach(clip)}
}

func (m *Model) attachAmbience(path string) {
	track, err := media.OpenTrack(path, m.cfg.Gate, m.cfg.Volume, media.WithTrackLogger(m.cfg.Logger))
	if err != nil {
		m.report(errmsg.FormatWith(errmsg.OpAmbienceOpen, filepath.Base(path), err))
		m.cfg.Logger.Warn("ambience unavailable", "path", path, "error", err)
		return
	}
	m.ambience = &trackMount{track: track, session: m.cfg.Controller.Attach(track)}
}

// Unmount detaches every session and releases the slide's media. It is a
// no-op when nothing is mounted.
func (m *Model) Unmount() {
	if m.background != nil {
		m.background.session.Detach()
		m.background.clip.Pause()
		m.background = nil
	}
	if m.accent != nil {
		m.accent.session.Detach()
		m.accent.clip.Pause()
		m.accent = nil
	}
	if m.ambience != nil {
		m.ambience.session.Detach()
		if err := m.ambience.track.Close(); err != nil {
			m.cfg.Logger.Debug("close ambience", "error", err)
		}
		m.ambience = nil
	}
	m.mounted = false
}

func (m *Model) probeCmd(slot Slot, src string) tea.Cmd {
	gen := m.generation
	prober := m.cfg.Prober
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		d, err := prober.Duration(ctx, src)
		return MetadataMsg{Generation: gen, Slot: slot, Src: src, Duration: d, Err: err}
	}
}

func (m *Model) preloadCmd(src string) tea.Cmd {
	gen := m.generation
	images := m.cfg.Images
	return func() tea.Msg {
		return ImageMsg{Generation: gen, Src: src, Err: images.Preload(src)}
	}
}

// HandleImage records a failed image decode for the mounted slide.
func (m *Model) HandleImage(msg ImageMsg) {
	if msg.Generation != m.generation || !m.mounted || msg.Err == nil {
		return
	}
	m.report(errmsg.FormatWith(errmsg.OpImageLoad, filepath.Base(msg.Src), msg.Err))
	m.cfg.Logger.Warn("image unavailable", "src", msg.Src, "error", msg.Err)
}

// HandleMetadata applies a probe result to the clip it belongs to. Results
// from an earlier mount are ignored.
func (m *Model) HandleMetadata(msg MetadataMsg) {
	if msg.Generation != m.generation || !m.mounted {
		return
	}
	cm := m.background
	if msg.Slot == SlotAccent {
		cm = m.accent
	}
	if cm == nil || cm.clip.Src() != msg.Src {
		return
	}

	if msg.Err != nil {
		m.report(errmsg.FormatWith(errmsg.OpMediaProbe, cm.clip.Name(), msg.Err))
		m.cfg.Logger.Warn("probe failed", "src", msg.Src, "slot", msg.Slot.String(), "error", msg.Err)
		if m.cfg.FallbackDuration > 0 {
			cm.clip.SetDuration(m.cfg.FallbackDuration)
			return
		}
		cm.clip.Fail(msg.Err)
		return
	}
	cm.clip.SetDuration(msg.Duration)
}

func (m *Model) report(s string) {
	m.diagnostics = append(m.diagnostics, s)
}

// Resume retries playback of every mounted element, used once autoplay is
// unlocked.
func (m *Model) Resume() {
	for _, s := range []*pingpong.Session{m.BackgroundSession(), m.AccentSession(), m.AmbienceSession()} {
		if s != nil {
			s.Resume()
		}
	}
}

// DrainDiagnostics returns and clears user-facing problems seen since the
// last call.
func (m *Model) DrainDiagnostics() []string {
	d := m.diagnostics
	m.diagnostics = nil
	return d
}

// Animating reports whether entrance animations are still running at now.
func (m *Model) Animating(now time.Time) bool {
	if !m.mounted {
		return false
	}
	return m.elapsed(now) < m.reveal.end()
}

// Floating reports whether the accent float needs periodic redraws.
func (m *Model) Floating() bool {
	return m.mounted && m.slide.HasAccent()
}

func (m *Model) elapsed(now time.Time) float64 {
	return now.Sub(m.mountedAt).Seconds()
}

// BackgroundClip returns the background video element, or nil.
func (m *Model) BackgroundClip() *media.Clip {
	if m.background == nil {
		return nil
	}
	return m.background.clip
}

// BackgroundSession returns the background ping-pong session, or nil.
func (m *Model) BackgroundSession() *pingpong.Session {
	if m.background == nil {
		return nil
	}
	return m.background.session
}

// AccentClip returns the accent video element, or nil.
func (m *Model) AccentClip() *media.Clip {
	if m.accent == nil {
		return nil
	}
	return m.accent.clip
}

// AccentSession returns the accent ping-pong session, or nil.
func (m *Model) AccentSession() *pingpong.Session {
	if m.accent == nil {
		return nil
	}
	return m.accent.session
}

// AmbienceSession returns the ambience ping-pong session, or nil.
func (m *Model) AmbienceSession() *pingpong.Session {
	if m.ambience == nil {
		return nil
	}
	return m.ambience.session
}
