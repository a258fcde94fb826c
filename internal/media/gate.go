// Package media provides the playable elements driven by ping-pong sessions:
// Clip, a clock-backed stand-in for a video, and Track, a beep-backed audio
// element.
package media

import "errors"

// ErrPlaybackRejected is returned by Play while the autoplay gate is closed.
var ErrPlaybackRejected = errors.New("playback rejected before user interaction")

// ErrAudioUnavailable is returned by Track.Play when no audio output is open.
var ErrAudioUnavailable = errors.New("audio output unavailable")

// Gate models the host autoplay policy. A nil Gate allows everything.
type Gate struct {
	locked bool
}

// NewGate returns a gate that, when requireInteraction is set, rejects
// playback until Unlock is called.
func NewGate(requireInteraction bool) *Gate {
	return &Gate{locked: requireInteraction}
}

// Unlock records a user interaction; playback is allowed from now on.
func (g *Gate) Unlock() {
	if g != nil {
		g.locked = false
	}
}

// Allowed reports whether playback may start.
func (g *Gate) Allowed() bool {
	return g == nil || !g.locked
}
