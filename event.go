package rectedit

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies a kind of editor event.
type EventType uint8

const (
	// EventQuit requests loop shutdown
	// Trigger: window close, Esc/Q keydown | Consumer: Editor
	EventQuit EventType = iota

	// EventKeyDown signals a key press
	// Trigger: input pump | Consumer: Editor (quit keys)
	EventKeyDown

	// EventPointerDown signals a pointer press with its resolved hit target
	// Trigger: input pump | Consumer: Editor (command dispatch)
	EventPointerDown

	// EventPointerUp signals a pointer release
	// Trigger: input pump | Consumer: MoveRectCommand (drag end)
	EventPointerUp

	// EventPointerMove signals pointer motion with relative deltas
	// Trigger: input pump | Consumer: Editor (handle highlights), MoveRectCommand
	EventPointerMove
)

// Event is implemented by every event variant. The variant set is
// closed: each variant carries exactly the fields its consumers need.
type Event interface {
	Type() EventType
}

// QuitEvent requests that the editor stop running.
type QuitEvent struct{}

func (QuitEvent) Type() EventType { return EventQuit }

// KeyDownEvent reports a key press.
type KeyDownEvent struct {
	Key ebiten.Key
}

func (KeyDownEvent) Type() EventType { return EventKeyDown }

// PointerDownEvent reports a pointer press. The producer resolves the
// hit test before publishing: Target is the topmost editable rectangle
// under the pointer, or nil; Button is the toolbar sprite under the
// pointer, or nil. At most one of the two is set.
type PointerDownEvent struct {
	X, Y   float64
	Target *EditRect
	Button *Sprite
}

func (PointerDownEvent) Type() EventType { return EventPointerDown }

// PointerUpEvent reports a pointer release.
type PointerUpEvent struct {
	X, Y float64
}

func (PointerUpEvent) Type() EventType { return EventPointerUp }

// PointerMoveEvent reports pointer motion. DX and DY are the motion
// relative to the previous pointer position.
type PointerMoveEvent struct {
	X, Y   float64
	DX, DY float64
}

func (PointerMoveEvent) Type() EventType { return EventPointerMove }
