package control

import (
	"image"
)

type EventType int

const (
	Quit EventType = iota
	KeyDown
	KeyUp
	ButtonDown
	ButtonUp
)

func (t EventType) String() string {
	switch t {
	case Quit:
		return "quit"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case ButtonDown:
		return "button-down"
	case ButtonUp:
		return "button-up"
	}
	return "unknown"
}

// Key is a logical viewer key, independent of the physical binding.
type Key int

const (
	KeyNone Key = iota
	KeyIterationsUp
	KeyIterationsDown
	KeyZoomIn
	KeyZoomOut
	KeyZoomRateUp
	KeyZoomRateDown
)

// Button is a pointer button. Only ButtonPrimary drives the view.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one discrete input edge.
type Event struct {
	Type   EventType
	Key    Key
	Button Button

	// Pos is the pointer position of a button event.
	Pos image.Point
}

func QuitEvent() Event {
	return Event{Type: Quit}
}

func KeyDownEvent(k Key) Event {
	return Event{Type: KeyDown, Key: k}
}

func KeyUpEvent(k Key) Event {
	return Event{Type: KeyUp, Key: k}
}

func ButtonDownEvent(b Button, pos image.Point) Event {
	return Event{Type: ButtonDown, Button: b, Pos: pos}
}

func ButtonUpEvent(b Button, pos image.Point) Event {
	return Event{Type: ButtonUp, Button: b, Pos: pos}
}

// A Source yields the input that arrived since the previous poll. Poll must
// not block.
type Source interface {
	Poll() []Event
	Pointer() image.Point
}
