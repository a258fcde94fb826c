package pingpong

import (
	"math"
	"slices"
)

// FakeElement is a test double for Element. Native playback only moves when
// Advance is called.
type FakeElement struct {
	time     float64
	duration float64
	rate     float64
	paused   bool
	ready    ReadyState
	playErr  error

	playCalls  int
	pauseCalls int
	seeks      []float64

	nextID    int
	listeners map[Event][]fakeListener
}

type fakeListener struct {
	id int
	fn func()
}

// NewFakeElement creates a paused element with unknown duration.
func NewFakeElement() *FakeElement {
	return &FakeElement{
		duration:  math.NaN(),
		rate:      1.0,
		paused:    true,
		listeners: make(map[Event][]fakeListener),
	}
}

func (f *FakeElement) CurrentTime() float64 { return f.time }

func (f *FakeElement) SetCurrentTime(t float64) {
	f.seeks = append(f.seeks, t)
	f.time = t
}

func (f *FakeElement) Duration() float64 { return f.duration }

func (f *FakeElement) PlaybackRate() float64 { return f.rate }

func (f *FakeElement) SetPlaybackRate(rate float64) { f.rate = rate }

func (f *FakeElement) Paused() bool { return f.paused }

func (f *FakeElement) Play() error {
	f.playCalls++
	if f.playErr != nil {
		return f.playErr
	}
	f.paused = false
	return nil
}

func (f *FakeElement) Pause() {
	f.pauseCalls++
	f.paused = true
}

func (f *FakeElement) ReadyState() ReadyState { return f.ready }

func (f *FakeElement) On(ev Event, fn func()) func() {
	f.nextID++
	id := f.nextID
	f.listeners[ev] = append(f.listeners[ev], fakeListener{id: id, fn: fn})
	return func() {
		f.listeners[ev] = slices.DeleteFunc(f.listeners[ev], func(l fakeListener) bool {
			return l.id == id
		})
	}
}

// Test helpers

// Emit fires every listener registered for ev.
func (f *FakeElement) Emit(ev Event) {
	for _, l := range slices.Clone(f.listeners[ev]) {
		l.fn()
	}
}

// Advance simulates native forward playback for the given wall time.
func (f *FakeElement) Advance(seconds float64) {
	if f.paused || math.IsNaN(f.duration) {
		return
	}
	f.time = min(f.time+seconds*f.rate, f.duration)
}

func (f *FakeElement) SetTime(t float64) { f.time = t }

func (f *FakeElement) SetDuration(d float64) { f.duration = d }

func (f *FakeElement) SetReadyState(r ReadyState) { f.ready = r }

func (f *FakeElement) SetPlayError(err error) { f.playErr = err }

func (f *FakeElement) PlayCalls() int { return f.playCalls }

func (f *FakeElement) PauseCalls() int { return f.pauseCalls }

func (f *FakeElement) Seeks() []float64 { return f.seeks }

// ListenerCount returns the number of live registrations for ev.
func (f *FakeElement) ListenerCount(ev Event) int { return len(f.listeners[ev]) }

// Verify FakeElement implements Element at compile time.
var _ Element = (*FakeElement)(nil)
