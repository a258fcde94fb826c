// Package frame provides a cooperative per-frame callback scheduler.
//
// A Loop plays the role of a display refresh loop: callbacks requested with
// RequestFrame run once, on the next Tick, and must request again to keep
// running. Callbacks requested while a tick is being processed run on the
// following tick, never the current one.
package frame

import "time"

// ID identifies a scheduled callback. The zero ID is never issued.
type ID uint64

// Callback runs on a tick. dt is the time elapsed since the previous tick,
// or zero when the loop was idle before this tick.
type Callback func(dt time.Duration)

// Loop schedules per-frame callbacks. It is not safe for concurrent use; it
// is driven from a single goroutine (the UI update loop).
type Loop struct {
	nextID  ID
	pending map[ID]Callback
	order   []ID
	last    time.Time
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{pending: make(map[ID]Callback)}
}

// RequestFrame schedules fn for the next tick and returns its ID.
func (l *Loop) RequestFrame(fn Callback) ID {
	l.nextID++
	id := l.nextID
	l.pending[id] = fn
	l.order = append(l.order, id)
	return id
}

// CancelFrame removes a scheduled callback. Unknown or already-run IDs are ignored.
func (l *Loop) CancelFrame(id ID) {
	delete(l.pending, id)
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Tick runs every callback scheduled before the call, in request order, and
// returns how many ran. A callback cancelled by an earlier callback of the
// same tick does not run.
func (l *Loop) Tick(now time.Time) int {
	var dt time.Duration
	if !l.last.IsZero() {
		dt = max(now.Sub(l.last), 0)
	}

	batch := l.order
	l.order = nil

	ran := 0
	for _, id := range batch {
		fn, ok := l.pending[id]
		if !ok {
			continue
		}
		delete(l.pending, id)
		fn(dt)
		ran++
	}

	// An idle loop restarts with dt == 0 so a long pause is not reported
	// as one giant frame.
	if len(l.pending) == 0 {
		l.last = time.Time{}
	} else {
		l.last = now
	}
	return ran
}
