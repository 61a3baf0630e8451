package entity

// Side identifies which edge panel is active and which navigation a commit triggers.
type Side int

const (
	// SideBack is the left edge panel; committing it navigates back.
	SideBack Side = iota
	// SideForward is the right edge panel; committing it navigates forward.
	SideForward
)

// Sides lists both panels in a stable order.
var Sides = [...]Side{SideBack, SideForward}

// String returns a human-readable representation of the side.
func (s Side) String() string {
	switch s {
	case SideBack:
		return "back"
	case SideForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Opposite returns the panel on the other edge.
func (s Side) Opposite() Side {
	if s == SideBack {
		return SideForward
	}
	return SideBack
}

// ParseSide parses "back"/"left" or "forward"/"right".
func ParseSide(value string) (Side, bool) {
	switch value {
	case "back", "left":
		return SideBack, true
	case "forward", "right":
		return SideForward, true
	default:
		return SideBack, false
	}
}

// GesturePhase is a pan gesture state transition reported by the host.
type GesturePhase int

const (
	// GestureBegan is reported once when the drag starts.
	GestureBegan GesturePhase = iota
	// GestureChanged is reported for every drag movement.
	GestureChanged
	// GestureEnded is reported when the finger or pointer is released.
	GestureEnded
	// GestureCancelled is reported when the recognizer aborts the drag.
	GestureCancelled
)

// String returns a human-readable representation of the phase.
func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
