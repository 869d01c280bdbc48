package input

import "github.com/lixenwraith/otterpet/components"

// EventType discriminates pointer events delivered to the simulation
type EventType uint8

const (
	EventNone EventType = iota
	EventButtonDown
	EventButtonUp
	EventMove
	EventQuit
)

// String returns the event type name
func (t EventType) String() string {
	switch t {
	case EventButtonDown:
		return "ButtonDown"
	case EventButtonUp:
		return "ButtonUp"
	case EventMove:
		return "Move"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Button identifies the pointer button of a ButtonDown/ButtonUp event
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// String returns the button name
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "None"
	}
}

// Event is one pointer event in world units
// Pos is unused for ButtonUp and Quit
type Event struct {
	Type   EventType
	Button Button
	Pos    components.Vec2
}

// NewButtonDown creates a press event
func NewButtonDown(b Button, pos components.Vec2) Event {
	return Event{Type: EventButtonDown, Button: b, Pos: pos}
}

// NewButtonUp creates a release event
func NewButtonUp(b Button) Event {
	return Event{Type: EventButtonUp, Button: b}
}

// NewMove creates a pointer motion event
func NewMove(pos components.Vec2) Event {
	return Event{Type: EventMove, Pos: pos}
}

// NewQuit creates a quit event
func NewQuit() Event {
	return Event{Type: EventQuit}
}
