package media

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/cinedeck/internal/pingpong"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// IsAudioFile reports whether path has a decodable audio extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	}
	return false
}

// Track is an audio element backed by a beep stream. Metadata is available as
// soon as the file is decoded, so a Track is always ready.
//
// The speaker goroutine reads the stream concurrently; every access to the
// stream goes through speaker.Lock.
type Track struct {
	path      string
	file      *os.File
	streamer  beep.StreamSeekCloser
	format    beep.Format
	resampler *beep.Resampler
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	outRate   beep.SampleRate
	rate      float64
	gate      *Gate
	logger    *slog.Logger
	events    emitter
	closed    bool
}

// TrackOption configures a Track.
type TrackOption func(*Track)

// WithTrackLogger sets the logger used for seek failures.
func WithTrackLogger(logger *slog.Logger) TrackOption {
	return func(t *Track) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// endless pads a drained stream with silence and never reports exhaustion,
// so the speaker keeps it and a seek back brings the audio back.
type endless struct {
	s beep.Streamer
}

func (e endless) Stream(samples [][2]float64) (int, bool) {
	n, _ := e.s.Stream(samples)
	clear(samples[n:])
	return len(samples), true
}

func (e endless) Err() error { return e.s.Err() }

// OpenTrack decodes path and queues it, paused, on the speaker when audio
// output is open. level is a 0..1 volume.
func OpenTrack(path string, gate *Gate, level float64, opts ...TrackOption) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	outRate, open := audioOutput()
	if !open {
		outRate = format.SampleRate
	}

	t := &Track{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		outRate:  outRate,
		rate:     1.0,
		gate:     gate,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.resampler = beep.ResampleRatio(4, t.ratio(), endless{s: streamer})
	t.ctrl = &beep.Ctrl{Streamer: t.resampler, Paused: true}
	t.volume = &effects.Volume{Streamer: t.ctrl, Base: 2, Volume: levelToVolume(level), Silent: level <= 0}

	if open {
		speaker.Play(t.volume)
	}
	return t, nil
}

// levelToVolume maps a 0..1 level onto beep's base-2 volume scale:
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

func (t *Track) ratio() float64 {
	return float64(t.format.SampleRate) / float64(t.outRate) * t.rate
}

// Path returns the audio file path.
func (t *Track) Path() string { return t.path }

func (t *Track) CurrentTime() float64 {
	speaker.Lock()
	defer speaker.Unlock()
	if t.closed {
		return 0
	}
	return t.format.SampleRate.D(t.streamer.Position()).Seconds()
}

func (t *Track) SetCurrentTime(sec float64) {
	if math.IsNaN(sec) {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if t.closed {
		return
	}
	n := t.format.SampleRate.N(time.Duration(sec * float64(time.Second)))
	n = min(max(n, 0), t.streamer.Len())
	if err := t.streamer.Seek(n); err != nil {
		t.logger.Debug("seek ambience", "path", t.path, "to", sec, "error", err)
	}
}

func (t *Track) Duration() float64 {
	return float64(t.streamer.Len()) / float64(t.format.SampleRate)
}

func (t *Track) PlaybackRate() float64 { return t.rate }

func (t *Track) SetPlaybackRate(rate float64) {
	if rate <= 0 || math.IsNaN(rate) {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	t.rate = rate
	t.resampler.SetRatio(t.ratio())
}

func (t *Track) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return t.ctrl.Paused
}

func (t *Track) Play() error {
	if !t.gate.Allowed() {
		return ErrPlaybackRejected
	}
	if _, open := audioOutput(); !open {
		return ErrAudioUnavailable
	}
	speaker.Lock()
	defer speaker.Unlock()
	if t.closed {
		return ErrAudioUnavailable
	}
	t.ctrl.Paused = false
	return nil
}

func (t *Track) Pause() {
	speaker.Lock()
	defer speaker.Unlock()
	t.ctrl.Paused = true
}

func (t *Track) ReadyState() pingpong.ReadyState {
	if t.closed {
		return pingpong.HaveNothing
	}
	return pingpong.HaveEnoughData
}

func (t *Track) On(ev pingpong.Event, fn func()) func() {
	return t.events.on(ev, fn)
}

// Close detaches the track from the speaker and releases the file.
func (t *Track) Close() error {
	speaker.Lock()
	if t.closed {
		speaker.Unlock()
		return nil
	}
	t.closed = true
	t.ctrl.Paused = true
	t.ctrl.Streamer = nil
	speaker.Unlock()

	err := t.streamer.Close()
	_ = t.file.Close()
	return err
}

// Verify Track implements pingpong.Element at compile time.
var _ pingpong.Element = (*Track)(nil)
