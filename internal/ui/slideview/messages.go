package slideview

// Slot identifies which media element of a slide a message is about.
type Slot int

const (
	SlotBackground Slot = iota
	SlotAccent
)

func (s Slot) String() string {
	if s == SlotAccent {
		return "accent"
	}
	return "background"
}

// MetadataMsg carries the probed duration of a mounted clip back to the UI
// loop. Generation ties it to one Mount; stale results are dropped.
type MetadataMsg struct {
	Generation uint64
	Slot       Slot
	Src        string
	Duration   float64
	Err        error
}

// ImageMsg reports that a still image of a mounted slide finished decoding.
type ImageMsg struct {
	Generation uint64
	Src        string
	Err        error
}
