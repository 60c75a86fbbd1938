package rectedit

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func runFrames(t *testing.T, ed *Editor, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := ed.Update(); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
	}
}

func TestNewEditorToolbar(t *testing.T) {
	ed := newTestEditor()

	buttons := ed.buttons
	if len(buttons) != 2 {
		t.Fatalf("toolbar has %d buttons, want 2", len(buttons))
	}

	world := ed.World()
	minus, plus := buttons[0], buttons[1]

	// Bottom-left anchored with a 10px inset, laid out left-to-right
	// with no padding.
	if minus.Rect.X != world.X+10 || minus.Rect.Bottom() != world.Bottom()-10 {
		t.Errorf("minus button at (%v, bottom %v), want (10, %v)",
			minus.Rect.X, minus.Rect.Bottom(), world.Bottom()-10)
	}
	if plus.Rect.X != minus.Rect.Right() {
		t.Errorf("plus button X = %v, want %v", plus.Rect.X, minus.Rect.Right())
	}
	if plus.Rect.Y != minus.Rect.Y {
		t.Errorf("buttons not on one row: %v vs %v", plus.Rect.Y, minus.Rect.Y)
	}

	for _, b := range buttons {
		if b.Kind != SpriteImage {
			t.Errorf("button kind = %v, want SpriteImage", b.Kind)
		}
		if b.Command == nil {
			t.Errorf("button %q has no bound command", b.Props["type"])
		}
	}
	if minus.Props["type"] != "remove rect" || plus.Props["type"] != "add rect" {
		t.Errorf("button props = %q, %q", minus.Props["type"], plus.Props["type"])
	}
}

func TestEditorStartsEmpty(t *testing.T) {
	ed := newTestEditor()
	if len(ed.Rects()) != 0 {
		t.Errorf("new editor has %d rects, want 0", len(ed.Rects()))
	}
	if got := ed.World(); got.Width != 800 || got.Height != 600 {
		t.Errorf("world = %vx%v, want 800x600", got.Width, got.Height)
	}
}

func TestClickPlusButtonAddsRect(t *testing.T) {
	ed := newTestEditor()

	// Plus button spans (60, 540)-(110, 590) in the default layout.
	ed.InjectClick(85, 565)
	runFrames(t, ed, 2)

	rects := ed.Rects()
	if len(rects) != 1 {
		t.Fatalf("rect count after click = %d, want 1", len(rects))
	}
	if got, want := rects[0].Rect.Center(), ed.World().Center(); got != want {
		t.Errorf("new rect centered at %v, want %v", got, want)
	}
}

func TestClickEmptySpaceAddsNothing(t *testing.T) {
	ed := newTestEditor()
	ed.InjectClick(400, 100)
	runFrames(t, ed, 2)
	if len(ed.Rects()) != 0 {
		t.Errorf("click on empty space created %d rects", len(ed.Rects()))
	}
}

func TestDragMovesRect(t *testing.T) {
	ed := newTestEditor()
	ed.InjectClick(85, 565) // add one rect: spans (300, 225)-(500, 375)
	runFrames(t, ed, 2)

	ed.InjectPress(400, 300)
	ed.InjectMove(410, 320)
	ed.InjectRelease(410, 320)
	runFrames(t, ed, 3)

	got := ed.Rects()[0].Rect
	if got.X != 310 || got.Y != 245 {
		t.Errorf("rect at (%v, %v) after drag, want (310, 245)", got.X, got.Y)
	}

	// After release the rect is no longer bound: a fresh pressed move
	// elsewhere must not drag it.
	ed.InjectHover(410, 320)
	ed.InjectHover(600, 500)
	runFrames(t, ed, 2)
	got = ed.Rects()[0].Rect
	if got.X != 310 || got.Y != 245 {
		t.Errorf("rect drifted after release: at (%v, %v)", got.X, got.Y)
	}
}

func TestHandleHighlightsFollowPointer(t *testing.T) {
	ed := newTestEditor()
	ed.InjectClick(85, 565) // rect spans (300, 225)-(500, 375), handles 37.5px
	runFrames(t, ed, 2)

	// Prime the pointer position, then hover over the top-left handle.
	ed.InjectHover(200, 100)
	ed.InjectHover(310, 230)
	runFrames(t, ed, 2)

	if len(ed.highlights) != 1 {
		t.Fatalf("highlight count over a handle = %d, want 1", len(ed.highlights))
	}
	want := ed.Rects()[0].TopLeftResizeHandle()
	if ed.highlights[0] != want {
		t.Errorf("highlight = %+v, want top-left handle %+v", ed.highlights[0], want)
	}

	// Moving off the rect clears the list: nothing accumulates across
	// frames.
	ed.InjectHover(700, 100)
	runFrames(t, ed, 1)
	if len(ed.highlights) != 0 {
		t.Errorf("stale highlights leaked: %d entries", len(ed.highlights))
	}
}

func TestHighlightsDoNotLeakAcrossDrags(t *testing.T) {
	ed := newTestEditor()
	ed.InjectClick(85, 565)
	runFrames(t, ed, 2)

	// Drag across the rect so the pointer passes several handles.
	ed.InjectDrag(310, 235, 490, 365, 6)
	runFrames(t, ed, 6)

	// Hover far away: the highlight list must be empty.
	ed.InjectHover(700, 100)
	runFrames(t, ed, 1)
	if len(ed.highlights) != 0 {
		t.Errorf("highlights leaked after drag: %d entries", len(ed.highlights))
	}
}

func TestEscapePublishesQuit(t *testing.T) {
	ed := newTestEditor()

	ed.Bus().Notify(KeyDownEvent{Key: ebiten.KeyEscape})

	// Consume a queued sample so Update skips real input reads.
	ed.InjectHover(0, 0)
	if err := ed.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Esc = %v, want ebiten.Termination", err)
	}
}

func TestQuitEventStopsLoop(t *testing.T) {
	ed := newTestEditor()

	ed.Bus().Notify(QuitEvent{})
	ed.InjectHover(0, 0)
	if err := ed.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after quit = %v, want ebiten.Termination", err)
	}
}

func TestNonQuitKeyKeepsRunning(t *testing.T) {
	ed := newTestEditor()

	ed.Bus().Notify(KeyDownEvent{Key: ebiten.KeyA})
	ed.InjectHover(0, 0)
	if err := ed.Update(); err != nil {
		t.Errorf("Update after non-quit key = %v, want nil", err)
	}
}

func TestHitTestTopmostRect(t *testing.T) {
	ed := newTestEditor()
	bottom := NewEditRect(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	top := NewEditRect(Rect{X: 50, Y: 50, Width: 100, Height: 100})
	ed.AddRect(bottom)
	ed.AddRect(top)

	if got := ed.hitTestRects(75, 75); got != top {
		t.Errorf("overlap hit = %v, want the later (topmost) rect", got)
	}
	if got := ed.hitTestRects(10, 10); got != bottom {
		t.Errorf("non-overlap hit = %v, want the bottom rect", got)
	}
	if got := ed.hitTestRects(500, 10); got != nil {
		t.Errorf("empty-space hit = %v, want nil", got)
	}
}

func TestRectsShadowButtons(t *testing.T) {
	ed := newTestEditor()

	// Cover the plus button with a rect; a press there must resolve to
	// the rect, not the button.
	cover := NewEditRect(Rect{X: 0, Y: 500, Width: 200, Height: 100})
	ed.AddRect(cover)

	before := len(ed.Rects())
	ed.InjectClick(85, 565)
	runFrames(t, ed, 2)
	if len(ed.Rects()) != before {
		t.Errorf("shadowed button still fired: %d rects, want %d", len(ed.Rects()), before)
	}
}

func TestSpawnFlashExpires(t *testing.T) {
	ed := newTestEditor()
	ed.AddRect(NewEditRect(Rect{X: 0, Y: 0, Width: 10, Height: 10}))
	if len(ed.flashes) != 1 {
		t.Fatalf("flash count after add = %d, want 1", len(ed.flashes))
	}

	// 60 frames at 60 TPS is one second, well past the flash duration.
	for i := 0; i < 60; i++ {
		ed.InjectHover(0, 0)
	}
	runFrames(t, ed, 60)
	if len(ed.flashes) != 0 {
		t.Errorf("flash did not expire: %d left", len(ed.flashes))
	}
}
