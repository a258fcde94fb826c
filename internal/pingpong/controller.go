package pingpong

import (
	"log/slog"
	"math"
	"time"

	"github.com/llehouerou/cinedeck/internal/frame"
)

// Config holds the tuning constants of the ping-pong cycle.
type Config struct {
	Rate      float64       // playback multiplier for both directions
	Epsilon   float64       // boundary distance in seconds from start and end
	FrameRate float64       // nominal refresh rate, used when a tick reports no delta
	MaxFrame  time.Duration // largest delta honored for one reverse step
}

// DefaultConfig returns the slow, cinematic defaults.
func DefaultConfig() Config {
	return Config{
		Rate:      0.6,
		Epsilon:   0.1,
		FrameRate: 60,
		MaxFrame:  100 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Rate <= 0 || math.IsNaN(c.Rate) {
		c.Rate = d.Rate
	}
	if c.Epsilon <= 0 || math.IsNaN(c.Epsilon) {
		c.Epsilon = d.Epsilon
	}
	if c.FrameRate <= 0 || math.IsNaN(c.FrameRate) {
		c.FrameRate = d.FrameRate
	}
	if c.MaxFrame <= 0 {
		c.MaxFrame = d.MaxFrame
	}
	return c
}

// Step returns the reverse position decrement for a frame of length dt.
// A non-positive dt counts as one nominal frame.
func (c Config) Step(dt time.Duration) float64 {
	seconds := 1 / c.FrameRate
	if dt > 0 {
		seconds = min(dt, c.MaxFrame).Seconds()
	}
	return seconds * c.Rate
}

// Controller attaches ping-pong sessions to elements.
type Controller struct {
	sched    Scheduler
	cfg      Config
	logger   *slog.Logger
	onReject func(error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig overrides the cycle constants. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg.withDefaults() }
}

// WithLogger sets the logger used for playback diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRejectHandler registers fn to be told about rejected play requests.
func WithRejectHandler(fn func(error)) Option {
	return func(c *Controller) { c.onReject = fn }
}

// New creates a controller scheduling its ticks on sched.
func New(sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sched:  sched,
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the effective cycle constants.
func (c *Controller) Config() Config {
	return c.cfg
}

// Attach starts driving el and returns its session. The element must already
// have its source assigned; it is never created or destroyed here.
func (c *Controller) Attach(el Element) *Session {
	s := &Session{
		el:       el,
		sched:    c.sched,
		cfg:      c.cfg,
		logger:   c.logger,
		onReject: c.onReject,
	}

	el.SetPlaybackRate(c.cfg.Rate)
	if el.ReadyState() >= HaveCurrentData {
		s.start()
		return s
	}

	s.offs = append(s.offs,
		el.On(EventLoadedMetadata, s.start),
		el.On(EventCanPlay, s.start),
	)
	return s
}

// Session is the live ping-pong state of one element. It is owned by the
// goroutine driving the scheduler.
type Session struct {
	el       Element
	sched    Scheduler
	cfg      Config
	logger   *slog.Logger
	onReject func(error)

	direction Direction
	frameID   frame.ID
	active    bool
	started   bool
	detached  bool
	offs      []func()
}

// Direction returns the current playback direction.
func (s *Session) Direction() Direction { return s.direction }

// Active reports whether a tick is currently scheduled.
func (s *Session) Active() bool { return s.active }

// Started reports whether the forward phase has begun.
func (s *Session) Started() bool { return s.started }

// Detach cancels the pending tick and removes element registrations.
// It is safe to call more than once and before the session ever started.
func (s *Session) Detach() {
	if s.detached {
		return
	}
	s.detached = true
	if s.active {
		s.sched.CancelFrame(s.frameID)
		s.active = false
	}
	for _, off := range s.offs {
		off()
	}
	s.offs = nil
}

// Resume retries forward playback that was rejected, for example before
// the user interacted. Sessions that have not started, are reversing, or are
// already playing are left alone.
func (s *Session) Resume() {
	if s.detached || !s.started || s.direction != Forward || !s.el.Paused() {
		return
	}
	s.el.SetPlaybackRate(s.cfg.Rate)
	s.play()
}

func (s *Session) start() {
	if s.detached || s.started {
		return
	}
	s.started = true
	s.el.SetPlaybackRate(s.cfg.Rate)
	s.play()
	s.schedule()
}

func (s *Session) schedule() {
	if s.detached || s.active {
		return
	}
	s.frameID = s.sched.RequestFrame(s.tick)
	s.active = true
}

func (s *Session) tick(dt time.Duration) {
	s.active = false
	if s.detached {
		return
	}
	defer s.schedule()

	duration := s.el.Duration()
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration == 0 {
		return
	}
	pos := s.el.CurrentTime()

	switch s.direction {
	case Forward:
		if pos >= duration-s.cfg.Epsilon {
			s.direction = Reverse
			s.el.Pause()
		}
	case Reverse:
		if pos <= s.cfg.Epsilon {
			s.direction = Forward
			s.el.SetPlaybackRate(s.cfg.Rate)
			s.play()
			return
		}
		s.el.SetCurrentTime(max(0, pos-s.cfg.Step(dt)))
	}
}

func (s *Session) play() {
	if err := s.el.Play(); err != nil {
		s.logger.Warn("playback rejected", "direction", s.direction.String(), "error", err)
		if s.onReject != nil {
			s.onReject(err)
		}
	}
}
