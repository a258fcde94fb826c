package media

import (
	"slices"

	"github.com/llehouerou/cinedeck/internal/pingpong"
)

type listener struct {
	id int
	fn func()
}

// emitter keeps element event registrations in registration order.
type emitter struct {
	nextID int
	subs   map[pingpong.Event][]listener
}

func (e *emitter) on(ev pingpong.Event, fn func()) func() {
	if e.subs == nil {
		e.subs = make(map[pingpong.Event][]listener)
	}
	e.nextID++
	id := e.nextID
	e.subs[ev] = append(e.subs[ev], listener{id: id, fn: fn})
	return func() {
		e.subs[ev] = slices.DeleteFunc(e.subs[ev], func(l listener) bool {
			return l.id == id
		})
	}
}

func (e *emitter) emit(ev pingpong.Event) {
	for _, l := range slices.Clone(e.subs[ev]) {
		l.fn()
	}
}

func (e *emitter) count() int {
	n := 0
	for _, subs := range e.subs {
		n += len(subs)
	}
	return n
}
