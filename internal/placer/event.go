package placer

import (
	"fmt"
	"strings"

	"github.com/Faultbox/ref-placer/pkg/math"
)

// EventType identifies a gesture input event.
type EventType int

// Gesture events. Primary, Shift and Ctrl are edge events that toggle state.
const (
	EventNone EventType = iota
	EventPrimary
	EventSecondary
	EventMove
	EventWheelUp
	EventWheelDown
	EventShift
	EventCtrl
	EventConfirm
	EventCancel
)

var eventNames = map[EventType]string{
	EventNone:      "none",
	EventPrimary:   "primary",
	EventSecondary: "secondary",
	EventMove:      "move",
	EventWheelUp:   "wheel_up",
	EventWheelDown: "wheel_down",
	EventShift:     "shift",
	EventCtrl:      "ctrl",
	EventConfirm:   "confirm",
	EventCancel:    "cancel",
}

// String returns the event name used in gesture scripts.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// ParseEventType parses an event name such as "wheel_up".
func ParseEventType(s string) (EventType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range eventNames {
		if n == name && t != EventNone {
			return t, nil
		}
	}
	return EventNone, fmt.Errorf("unknown event %q", s)
}

// Event is one input event delivered to a session.
type Event struct {
	Type    EventType
	Pointer math.Vec2 // Pointer position in viewport pixels
}
