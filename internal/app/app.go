package app

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cinedeck/internal/catalog"
	"github.com/llehouerou/cinedeck/internal/config"
	"github.com/llehouerou/cinedeck/internal/deck"
	"github.com/llehouerou/cinedeck/internal/errmsg"
	"github.com/llehouerou/cinedeck/internal/frame"
	"github.com/llehouerou/cinedeck/internal/keymap"
	"github.com/llehouerou/cinedeck/internal/media"
	"github.com/llehouerou/cinedeck/internal/pingpong"
	"github.com/llehouerou/cinedeck/internal/ui/controls"
	"github.com/llehouerou/cinedeck/internal/ui/imageview"
	"github.com/llehouerou/cinedeck/internal/ui/popup"
	"github.com/llehouerou/cinedeck/internal/ui/slideview"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// Options are the collaborators of the root model.
type Options struct {
	Deck   *catalog.Deck
	Config *config.Config
	Prober *media.Prober  // nil probes with ffprobe, uncached
	Logger *slog.Logger   // nil discards
	Clock  func() time.Time
	Stderr <-chan string // captured backend output, may be nil
}

// status is the one-line diagnostic shown above the control strip. It is
// shared by pointer so the reject handler can write to it.
type status struct {
	text string
}

func (s *status) set(text string) { s.text = text }
func (s *status) clear()          { s.text = "" }

// Model is the root application model.
type Model struct {
	Deck       *deck.Deck
	Slides     *slideview.Model
	Controls   *controls.Model
	Loop       *frame.Loop
	Gate       *media.Gate
	Resolver   *keymap.Resolver
	Help       *popup.Help
	ShowHelp   bool
	Fullscreen bool
	Width      int
	Height     int

	status  *status
	fps     int
	ticking bool
	logger  *slog.Logger
	clock   func() time.Time
	stderr  <-chan string
	initCmd tea.Cmd
}

// New builds the model and mounts the first slide.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	prober := opts.Prober
	if prober == nil {
		prober = media.NewProber(nil)
	}

	st := &status{}
	loop := frame.NewLoop()
	pb := cfg.GetPlaybackConfig()
	audio := cfg.GetAudioConfig()

	controller := pingpong.New(loop,
		pingpong.WithConfig(controllerConfig(pb)),
		pingpong.WithLogger(logger),
		pingpong.WithRejectHandler(func(err error) {
			st.set(rejectMessage(err))
		}),
	)
	gate := media.NewGate(cfg.RequiresInteraction())

	slides := slideview.New(slideview.Config{
		Controller:       controller,
		Prober:           prober,
		Gate:             gate,
		Images:           imageview.New(styles.T().Dark),
		Brand:            opts.Deck.Brand,
		FallbackDuration: pb.FallbackDuration,
		AudioEnabled:     *audio.Enabled,
		Volume:           audio.Volume,
		Logger:           logger,
		Clock:            clock,
	})

	strip := controls.New()
	resolver := keymap.NewResolver(keymap.All)
	m := Model{
		Deck:       deck.New(opts.Deck),
		Slides:     slides,
		Controls:   &strip,
		Loop:       loop,
		Gate:       gate,
		Resolver:   resolver,
		Help:       popup.NewHelp(resolver.HelpGroups(keymap.ContextNavigation, keymap.ContextPresentation, keymap.ContextGlobal)...),
		Fullscreen: cfg.IsFullscreen(),
		status:     st,
		fps:        cfg.GetFPS(),
		logger:     logger,
		clock:      clock,
		stderr:     opts.Stderr,
	}
	// the first slide's reveal needs frames right away
	m.initCmd = tea.Batch(m.mountCurrent(), FrameCmd(m.fastInterval()))
	m.ticking = true
	return m
}

func controllerConfig(pb config.PlaybackConfig) pingpong.Config {
	return pingpong.Config{Rate: pb.Rate, Epsilon: pb.Epsilon, FrameRate: pb.FrameRate}
}

// rejectMessage turns a playback rejection into status line text.
func rejectMessage(err error) string {
	if errors.Is(err, media.ErrPlaybackRejected) {
		return "Media is paused until the first key press"
	}
	return errmsg.Format(errmsg.OpPlaybackStart, err)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, waitForStderr(m.stderr))
}

// Status returns the status line text.
func (m Model) Status() string { return m.status.text }

// Close releases the mounted slide's media.
func (m Model) Close() {
	m.Slides.Unmount()
}
