package media

import (
	"math"
	"path/filepath"
	"time"

	"github.com/llehouerou/cinedeck/internal/pingpong"
)

// Clip is a video element whose frames are not decoded: its position is a
// clock that advances at the playback rate while playing. Duration arrives
// later through SetDuration, which fires loadedmetadata and canplay.
type Clip struct {
	src  string
	now  func() time.Time
	gate *Gate

	duration float64
	ready    pingpong.ReadyState
	rate     float64
	paused   bool
	base     float64   // position at anchor
	anchor   time.Time // wall time the current run started
	err      error
	events   emitter
}

// ClipOption configures a Clip.
type ClipOption func(*Clip)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ClipOption {
	return func(c *Clip) { c.now = now }
}

// WithGate applies an autoplay policy to Play.
func WithGate(g *Gate) ClipOption {
	return func(c *Clip) { c.gate = g }
}

// NewClip creates a paused clip for src with unknown duration.
func NewClip(src string, opts ...ClipOption) *Clip {
	c := &Clip{
		src:      src,
		now:      time.Now,
		duration: math.NaN(),
		rate:     1.0,
		paused:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Src returns the media source.
func (c *Clip) Src() string { return c.src }

// Name returns the base name of the source, for display.
func (c *Clip) Name() string { return filepath.Base(c.src) }

func (c *Clip) known() bool {
	return !math.IsNaN(c.duration) && !math.IsInf(c.duration, 0) && c.duration > 0
}

func (c *Clip) position() float64 {
	if c.paused || !c.known() {
		return c.base
	}
	t := c.base + c.now().Sub(c.anchor).Seconds()*c.rate
	return min(t, c.duration)
}

// settle pauses a clip whose clock ran past the end, like a media element
// reaching the end of its stream.
func (c *Clip) settle() {
	if c.paused || !c.known() {
		return
	}
	if pos := c.position(); pos >= c.duration {
		c.base = c.duration
		c.paused = true
	}
}

func (c *Clip) rebase() {
	c.base = c.position()
	c.anchor = c.now()
}

func (c *Clip) CurrentTime() float64 {
	c.settle()
	return c.position()
}

func (c *Clip) SetCurrentTime(t float64) {
	if math.IsNaN(t) {
		return
	}
	c.settle()
	t = max(t, 0)
	if c.known() {
		t = min(t, c.duration)
	}
	c.base = t
	c.anchor = c.now()
}

func (c *Clip) Duration() float64 { return c.duration }

func (c *Clip) PlaybackRate() float64 { return c.rate }

// SetPlaybackRate changes the rate from the current position on. Non-positive
// rates are ignored; reverse playback is not supported natively.
func (c *Clip) SetPlaybackRate(rate float64) {
	if rate <= 0 || math.IsNaN(rate) {
		return
	}
	c.rebase()
	c.rate = rate
}

func (c *Clip) Paused() bool {
	c.settle()
	return c.paused
}

// Ended reports whether the clip stopped at its end.
func (c *Clip) Ended() bool {
	c.settle()
	return c.paused && c.known() && c.base >= c.duration
}

// Play starts or resumes the clock. An ended clip restarts from zero.
func (c *Clip) Play() error {
	if !c.gate.Allowed() {
		return ErrPlaybackRejected
	}
	c.settle()
	if c.known() && c.base >= c.duration {
		c.base = 0
	}
	if c.paused {
		c.paused = false
		c.anchor = c.now()
	}
	return nil
}

func (c *Clip) Pause() {
	if c.paused {
		return
	}
	c.base = c.position()
	c.paused = true
}

func (c *Clip) ReadyState() pingpong.ReadyState { return c.ready }

func (c *Clip) On(ev pingpong.Event, fn func()) func() {
	return c.events.on(ev, fn)
}

// SetDuration delivers metadata. Invalid durations are ignored.
func (c *Clip) SetDuration(d float64) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return
	}
	c.duration = d
	c.base = min(c.base, d)
	c.anchor = c.now()
	c.err = nil

	c.ready = pingpong.HaveMetadata
	c.events.emit(pingpong.EventLoadedMetadata)
	c.ready = pingpong.HaveEnoughData
	c.events.emit(pingpong.EventCanPlay)
}

// Fail records why metadata could not be loaded.
func (c *Clip) Fail(err error) { c.err = err }

// Err returns the last metadata failure.
func (c *Clip) Err() error { return c.err }

// Progress returns the position as a fraction of the duration, or 0 when unknown.
func (c *Clip) Progress() float64 {
	if !c.known() {
		return 0
	}
	return c.CurrentTime() / c.duration
}

// Verify Clip implements pingpong.Element at compile time.
var _ pingpong.Element = (*Clip)(nil)
