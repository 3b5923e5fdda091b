// Package input translates SDL2 input events into placement gestures.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// Input handles all input processing.
type Input struct {
	events []placer.Event

	pointer math.Vec2
	quit    bool

	resized       bool
	width, height int

	// Middle-button drag orbits the viewport.
	orbiting bool
	orbit    math.Vec2
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]placer.Event, 0, 16),
	}
}

// Update polls SDL events and converts them to gesture events.
// Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.resized = false
	i.orbit = math.Vec2{}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		default:
			if ev, ok := i.Translate(event); ok {
				i.events = append(i.events, ev)
			}
		}
	}

	return false
}

// Translate maps one SDL event to a gesture event. Shift, Ctrl and the left
// button report both edges, so a session toggling on each edge follows the
// held state. Key repeats are dropped.
func (i *Input) Translate(event sdl.Event) (placer.Event, bool) {
	switch e := event.(type) {
	case *sdl.MouseMotionEvent:
		i.pointer = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		if i.orbiting {
			i.orbit.X += float32(e.XRel)
			i.orbit.Y += float32(e.YRel)
			return placer.Event{}, false
		}
		return i.event(placer.EventMove), true

	case *sdl.MouseButtonEvent:
		i.pointer = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		down := e.State == sdl.PRESSED
		switch e.Button {
		case sdl.BUTTON_LEFT:
			return i.event(placer.EventPrimary), true
		case sdl.BUTTON_RIGHT:
			if down {
				return i.event(placer.EventSecondary), true
			}
		case sdl.BUTTON_MIDDLE:
			i.orbiting = down
		}

	case *sdl.MouseWheelEvent:
		y := e.Y
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			y = -y
		}
		switch {
		case y > 0:
			return i.event(placer.EventWheelUp), true
		case y < 0:
			return i.event(placer.EventWheelDown), true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return placer.Event{}, false
		}
		down := e.Type == sdl.KEYDOWN
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
			return i.event(placer.EventShift), true
		case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
			return i.event(placer.EventCtrl), true
		case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
			if down {
				return i.event(placer.EventConfirm), true
			}
		case sdl.SCANCODE_ESCAPE:
			if down {
				return i.event(placer.EventCancel), true
			}
		}
	}
	return placer.Event{}, false
}

func (i *Input) event(t placer.EventType) placer.Event {
	return placer.Event{Type: t, Pointer: i.pointer}
}

// Events returns the gesture events from the last Update.
func (i *Input) Events() []placer.Event {
	return i.events
}

// Quit reports whether the window was asked to close.
func (i *Input) Quit() bool {
	return i.quit
}

// Resized returns the new window size if it changed during the last Update.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}

// Orbit returns the middle-button drag accumulated during the last Update.
func (i *Input) Orbit() math.Vec2 {
	return i.orbit
}

// Pointer returns the last known pointer position.
func (i *Input) Pointer() math.Vec2 {
	return i.pointer
}
