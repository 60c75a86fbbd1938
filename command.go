package rectedit

import (
	"fmt"
	"os"
)

// Command is a begin/end-scoped user action bound to an input event.
// Implementations move between two states: idle and active. Begin
// transitions idle to active (and may subscribe transient listeners for
// the duration of the interaction); End transitions back to idle,
// releasing anything Begin acquired. There are exactly two commands:
// AddRectCommand and MoveRectCommand.
type Command interface {
	Begin(ev Event)
	End()
}

// AddRectCommand appends a new editable rectangle to the editor,
// a quarter of the world's size and centered in the world. It has no
// active phase: Begin completes synchronously and End is a no-op.
type AddRectCommand struct {
	editor *Editor
}

// NewAddRectCommand creates an add command bound to ed.
func NewAddRectCommand(ed *Editor) *AddRectCommand {
	return &AddRectCommand{editor: ed}
}

// Begin creates and appends the rectangle.
func (c *AddRectCommand) Begin(ev Event) {
	world := c.editor.World()
	rect := Rect{Width: world.Width / 4, Height: world.Height / 4}
	center := world.Center()
	rect.SetCenter(center.X, center.Y)
	c.editor.AddRect(NewEditRect(rect))
}

// End is a no-op; the add command has no active phase.
func (c *AddRectCommand) End() {}

// MoveRectCommand drags an editable rectangle. Begin binds the press
// target and subscribes transient pointer-move and pointer-release
// listeners; each move event shifts the bound rectangle by the event's
// relative delta; release (or End) unsubscribes and clears the binding.
type MoveRectCommand struct {
	editor *Editor
	target *EditRect

	moveHandle Handle
	upHandle   Handle
}

// NewMoveRectCommand creates a move command bound to ed.
func NewMoveRectCommand(ed *Editor) *MoveRectCommand {
	return &MoveRectCommand{editor: ed}
}

// Begin binds the event's target rectangle and starts the drag.
// Ignores events without a target and presses arriving while a drag is
// already active.
func (c *MoveRectCommand) Begin(ev Event) {
	down, ok := ev.(PointerDownEvent)
	if !ok || down.Target == nil || c.target != nil {
		return
	}
	c.target = down.Target
	bus := c.editor.Bus()
	c.upHandle = bus.Listen(EventPointerUp, c.onPointerUp)
	c.moveHandle = bus.Listen(EventPointerMove, c.onPointerMove)
	c.editor.setFocus(down.Target)
}

func (c *MoveRectCommand) onPointerMove(ev Event) {
	move, ok := ev.(PointerMoveEvent)
	if !ok || c.target == nil {
		return
	}
	c.target.Rect.X += move.DX
	c.target.Rect.Y += move.DY
}

func (c *MoveRectCommand) onPointerUp(Event) {
	c.End()
}

// End unsubscribes the transient listeners and clears the bound
// rectangle. Safe to call when already idle. Notify dispatches over a
// snapshot, so unsubscribing from inside the pointer-up callback is fine.
func (c *MoveRectCommand) End() {
	if c.target == nil {
		return
	}
	c.target = nil
	c.editor.setFocus(nil)
	bus := c.editor.Bus()
	if err := bus.Unsubscribe(c.moveHandle); err != nil {
		fmt.Fprintf(os.Stderr, "[rectedit] move command: %v\n", err)
	}
	if err := bus.Unsubscribe(c.upHandle); err != nil {
		fmt.Fprintf(os.Stderr, "[rectedit] move command: %v\n", err)
	}
}
