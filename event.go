package timepicker

// EventType identifies the kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota + 1
	EventPointerMove
	EventPointerUp
	EventPointerCancel
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "down"
	case EventPointerMove:
		return "move"
	case EventPointerUp:
		return "up"
	case EventPointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseEventType is the inverse of EventType.String.
func ParseEventType(s string) (EventType, bool) {
	switch s {
	case "down":
		return EventPointerDown, true
	case "move":
		return EventPointerMove, true
	case "up":
		return EventPointerUp, true
	case "cancel":
		return EventPointerCancel, true
	default:
		return 0, false
	}
}

// PointerEvent is a single pointer sample. X and Y are in the dial's
// centered frame: the host subtracts half the widget extent from its local
// coordinates before delivering the event.
type PointerEvent struct {
	Type EventType
	X, Y float32
}

// Responder is implemented by anything that consumes pointer events.
// Picker implements it; hosts dispatch through it.
type Responder interface {
	// HandleEvent processes an event. Return true if the event was claimed;
	// unclaimed events should be passed on to the host.
	HandleEvent(ev PointerEvent) bool

	// HitTest returns true if a pointer-down at (x, y) would be claimed.
	HitTest(x, y float32) bool
}

// DirtyMask records which parts of the dial changed since the host last
// painted.
type DirtyMask uint8

const (
	DirtyTime DirtyMask = 1 << iota
	DirtyPointer
	DirtyStyle
	DirtyLayout
	DirtyStep

	DirtyAll = DirtyTime | DirtyPointer | DirtyStyle | DirtyLayout | DirtyStep
)
