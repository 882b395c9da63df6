// Package input translates SDL2 events into studio events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Mouse buttons.
const (
	ButtonLeft   = uint8(sdl.BUTTON_LEFT)
	ButtonMiddle = uint8(sdl.BUTTON_MIDDLE)
	ButtonRight  = uint8(sdl.BUTTON_RIGHT)
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	// DX, DY are the relative motion for EventMouseMove and the scroll
	// amount for EventMouseWheel.
	DX, DY float32
	Button uint8
}

// Input collects the events of one frame and tracks held mouse buttons.
type Input struct {
	events []Event
	held   map[uint8]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[uint8]bool),
	}
}

// Update polls SDL events and converts them. It returns true when the user
// asked to quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := Translate(event); ok {
			quit = i.Push(e) || quit
		}
	}
	return quit
}

// Push records an already translated event. It returns true for EventQuit.
func (i *Input) Push(e Event) bool {
	i.events = append(i.events, e)
	switch e.Type {
	case EventMouseDown:
		i.held[e.Button] = true
	case EventMouseUp:
		delete(i.held, e.Button)
	case EventQuit:
		return true
	}
	return false
}

// Reset drops the events of the current frame.
func (i *Input) Reset() {
	i.events = i.events[:0]
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsButtonHeld reports whether a mouse button is down.
func (i *Input) IsButtonHeld(button uint8) bool {
	return i.held[button]
}

// Translate converts one SDL event. Events the studio does not use report
// false.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		case sdl.KEYUP:
			return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DX:     float32(e.XRel),
			DY:     float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			ev.Type = EventMouseDown
			return ev, true
		case sdl.MOUSEBUTTONUP:
			ev.Type = EventMouseUp
			return ev, true
		}

	case *sdl.MouseWheelEvent:
		dx, dy := float32(e.X), float32(e.Y)
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			dx, dy = -dx, -dy
		}
		return Event{Type: EventMouseWheel, DX: dx, DY: dy}, true
	}
	return Event{}, false
}
