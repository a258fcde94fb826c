package pingpong

// Direction is the playback direction of a session.
//
//	┌─────────┐  pos >= dur-eps  ┌─────────┐
//	│ Forward │ ────────────────▶│ Reverse │
//	└─────────┘                  └─────────┘
//	     ▲        pos <= eps          │
//	     └────────────────────────────┘
//
// Forward lets native playback advance the position. Reverse pauses the
// element and steps the position back on every frame.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// String returns the direction name for debugging.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}
