// Package pingpong drives a media element through an endless forward/reverse
// playback cycle without relying on native reverse playback.
package pingpong

import "github.com/llehouerou/cinedeck/internal/frame"

// ReadyState mirrors the HTML media readiness ladder.
type ReadyState int

const (
	HaveNothing ReadyState = iota
	HaveMetadata
	HaveCurrentData
	HaveFutureData
	HaveEnoughData
)

// Event names an element notification.
type Event string

const (
	EventLoadedMetadata Event = "loadedmetadata"
	EventCanPlay        Event = "canplay"
)

// Element is a stateful handle to one playable resource. Positions and
// durations are in seconds; Duration returns NaN while metadata is unknown.
type Element interface {
	CurrentTime() float64
	SetCurrentTime(t float64)
	Duration() float64
	PlaybackRate() float64
	SetPlaybackRate(rate float64)
	Paused() bool
	Play() error
	Pause()
	ReadyState() ReadyState
	// On registers fn for ev and returns a function removing the registration.
	On(ev Event, fn func()) (off func())
}

// Scheduler runs callbacks once per display refresh.
type Scheduler interface {
	RequestFrame(fn frame.Callback) frame.ID
	CancelFrame(id frame.ID)
}

// Verify frame.Loop implements Scheduler at compile time.
var _ Scheduler = (*frame.Loop)(nil)
