package rectedit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toolbarInset       = 10   // pixels from the world's bottom-left corner
	spawnFlashDuration = 0.35 // seconds
)

// keyLatch tracks a single key's previous state to detect press edges.
type keyLatch struct {
	key  ebiten.Key
	down bool
}

func (k *keyLatch) justPressed() bool {
	pressed := ebiten.IsKeyPressed(k.key)
	just := pressed && !k.down
	k.down = pressed
	return just
}

// spawnFlash is a short overlay fade drawn over a freshly added rect.
type spawnFlash struct {
	rect  Rect
	tween *gween.Tween
	alpha float32
	done  bool
}

// Editor owns the editable rectangles, the toolbar, and the event bus,
// and implements ebiten.Game. All state is mutated from Update/Draw on
// the game goroutine only.
type Editor struct {
	bus     *Bus
	command Command // active command for rect presses

	rects      []*EditRect
	buttons    []*Sprite
	highlights []Rect    // resize handles under the pointer, rebuilt per move
	focus      *EditRect // rect being dragged, outlined thick

	world   Rect
	running bool

	// Colors resolved from config.
	backgroundColor color.RGBA
	outlineColor    color.RGBA
	highlightColor  color.RGBA

	// Pointer state, previous-frame tracking.
	pointerDown bool
	pointerInit bool
	lastX       float64
	lastY       float64

	escKey keyLatch
	qKey   keyLatch
	f3Key  keyLatch
	f12Key keyLatch

	flashes []*spawnFlash

	injectQueue []syntheticPointerEvent

	debug   bool
	overlay *debugOverlay
	clicker *clicker

	screenshotDir   string
	screenshotQueue []string
}

// NewEditor creates an editor with an empty rectangle list and the two
// toolbar buttons placed in the world's bottom-left corner. The world
// spans the configured window size.
func NewEditor(cfg Config) *Editor {
	e := &Editor{
		bus:     NewBus(),
		world:   Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		running: true,

		backgroundColor: mustColor(cfg.Colors.Background, color.RGBA{A: 0xff}),
		outlineColor:    mustColor(cfg.Colors.Outline, color.RGBA{200, 200, 200, 0xff}),
		highlightColor:  mustColor(cfg.Colors.Highlight, color.RGBA{200, 200, 10, 0xff}),

		escKey: keyLatch{key: ebiten.KeyEscape},
		qKey:   keyLatch{key: ebiten.KeyQ},
		f3Key:  keyLatch{key: ebiten.KeyF3},
		f12Key: keyLatch{key: ebiten.KeyF12},

		debug:         cfg.Debug,
		overlay:       newDebugOverlay(),
		screenshotDir: cfg.ScreenshotDir,
	}

	e.command = NewMoveRectCommand(e)

	e.bus.Listen(EventQuit, e.onQuit)
	e.bus.Listen(EventKeyDown, e.onKeyDown)
	e.bus.Listen(EventPointerMove, e.onPointerMove)
	e.bus.Listen(EventPointerDown, e.onPointerDown)

	e.addToolbar(cfg)

	if cfg.Sound {
		e.clicker = newClicker()
	}
	return e
}

// addToolbar creates the minus and plus buttons and lays them out
// left-to-right from the world's bottom-left corner.
func (e *Editor) addToolbar(cfg Config) {
	size := cfg.ButtonSize
	minusColor := mustColor(cfg.Colors.Minus, color.RGBA{200, 10, 10, 0xff})
	plusColor := mustColor(cfg.Colors.Plus, color.RGBA{10, 200, 10, 0xff})

	minus := NewImageSprite(RenderMinusButton(size, minusColor),
		Rect{Width: float64(size), Height: float64(size)})
	minus.Props["type"] = "remove rect"
	// TODO: bind a remove command once one exists; for now the minus
	// button also adds.
	minus.Command = NewAddRectCommand(e)

	plus := NewImageSprite(RenderPlusButton(size, plusColor),
		Rect{Width: float64(size), Height: float64(size)})
	plus.Props["type"] = "add rect"
	plus.Command = NewAddRectCommand(e)

	minus.Rect.SetBottomLeft(e.world.X+toolbarInset, e.world.Bottom()-toolbarInset)
	plus.Rect.SetBottomLeft(e.world.X+toolbarInset, e.world.Bottom()-toolbarInset)
	LayoutHorizontal([]*Rect{&minus.Rect, &plus.Rect}, 0)

	e.buttons = append(e.buttons, minus, plus)
}

// Bus returns the editor's event bus.
func (e *Editor) Bus() *Bus { return e.bus }

// World returns the editor's world bounds.
func (e *Editor) World() Rect { return e.world }

// Rects returns the editable rectangle list. The returned slice MUST NOT
// be mutated by the caller.
func (e *Editor) Rects() []*EditRect { return e.rects }

// AddRect appends an editable rectangle and starts its spawn flash.
func (e *Editor) AddRect(er *EditRect) {
	e.rects = append(e.rects, er)
	e.flashes = append(e.flashes, &spawnFlash{
		rect:  er.Rect,
		tween: gween.New(1, 0, spawnFlashDuration, ease.OutQuad),
		alpha: 1,
	})
}

// setFocus marks er as the focused (dragged) rectangle, or clears the
// focus when er is nil.
func (e *Editor) setFocus(er *EditRect) {
	e.focus = er
}

// --- Event handlers ---

func (e *Editor) onQuit(Event) {
	e.running = false
}

// onKeyDown synthesizes a quit event for the quit keys.
func (e *Editor) onKeyDown(ev Event) {
	key, ok := ev.(KeyDownEvent)
	if !ok {
		return
	}
	if key.Key == ebiten.KeyEscape || key.Key == ebiten.KeyQ {
		e.bus.Notify(QuitEvent{})
	}
}

// onPointerDown dispatches the press to the active command when a rect
// was hit, or to the hit button's bound command otherwise.
func (e *Editor) onPointerDown(ev Event) {
	down, ok := ev.(PointerDownEvent)
	if !ok {
		return
	}
	switch {
	case down.Target != nil:
		e.command.Begin(down)
	case down.Button != nil && down.Button.Command != nil:
		if e.clicker != nil {
			e.clicker.play()
		}
		down.Button.Command.Begin(down)
	}
}

// onPointerMove rebuilds the handle-highlight list from scratch for the
// current pointer position. Rebuilding (rather than accumulating across
// frames) keeps stale handles from leaking into the draw list between
// drags.
func (e *Editor) onPointerMove(ev Event) {
	move, ok := ev.(PointerMoveEvent)
	if !ok {
		return
	}
	e.highlights = e.highlights[:0]
	for _, er := range e.rects {
		for _, handle := range er.ResizeHandles() {
			if handle.Contains(move.X, move.Y) {
				e.highlights = append(e.highlights, handle)
			}
		}
	}
}

// --- Input pump ---

// hitTestRects returns the topmost editable rectangle containing (x, y),
// or nil. Later rects draw on top, so iteration runs back to front.
func (e *Editor) hitTestRects(x, y float64) *EditRect {
	for i := len(e.rects) - 1; i >= 0; i-- {
		if e.rects[i].Rect.Contains(x, y) {
			return e.rects[i]
		}
	}
	return nil
}

// hitTestButtons returns the topmost toolbar sprite containing (x, y),
// or nil.
func (e *Editor) hitTestButtons(x, y float64) *Sprite {
	for i := len(e.buttons) - 1; i >= 0; i-- {
		if e.buttons[i].Rect.Contains(x, y) {
			return e.buttons[i]
		}
	}
	return nil
}

// processPointer runs the pointer edge detector for one frame's worth of
// input and publishes the corresponding event variant. Rectangles shadow
// buttons: a press over both resolves to the rectangle.
func (e *Editor) processPointer(x, y float64, pressed bool) {
	if !e.pointerInit {
		e.pointerInit = true
		e.lastX, e.lastY = x, y
	}
	switch {
	case pressed && !e.pointerDown:
		e.pointerDown = true
		target := e.hitTestRects(x, y)
		var button *Sprite
		if target == nil {
			button = e.hitTestButtons(x, y)
		}
		e.bus.Notify(PointerDownEvent{X: x, Y: y, Target: target, Button: button})
	case !pressed && e.pointerDown:
		e.pointerDown = false
		e.bus.Notify(PointerUpEvent{X: x, Y: y})
	default:
		if x != e.lastX || y != e.lastY {
			e.bus.Notify(PointerMoveEvent{X: x, Y: y, DX: x - e.lastX, DY: y - e.lastY})
		}
	}
	e.lastX, e.lastY = x, y
}

// readInput reads real keyboard and mouse state and publishes events.
func (e *Editor) readInput() {
	if e.escKey.justPressed() {
		e.bus.Notify(KeyDownEvent{Key: ebiten.KeyEscape})
	}
	if e.qKey.justPressed() {
		e.bus.Notify(KeyDownEvent{Key: ebiten.KeyQ})
	}
	if e.f3Key.justPressed() {
		e.debug = !e.debug
	}
	if e.f12Key.justPressed() {
		e.Screenshot("editor")
	}

	mx, my := ebiten.CursorPosition()
	e.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// advance steps time-based state (spawn flashes, debug overlay) by dt
// seconds.
func (e *Editor) advance(dt float64) {
	live := e.flashes[:0]
	for _, f := range e.flashes {
		f.alpha, f.done = f.tween.Update(float32(dt))
		if !f.done {
			live = append(live, f)
		}
	}
	e.flashes = live

	if e.debug {
		e.overlay.update(dt, len(e.rects))
	}
}

// --- ebiten.Game ---

// Update consumes one injected event if any are queued (real input is
// skipped that frame), otherwise reads real input; then advances
// time-based state. Returns ebiten.Termination once a quit event has
// been observed.
func (e *Editor) Update() error {
	if !e.processInjected() {
		e.readInput()
	}
	e.advance(1.0 / float64(ebiten.TPS()))
	if !e.running {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the frame: background, sprites, editable rectangles as
// 1px outlines, handle highlights, the focus outline, spawn flashes, and
// the debug overlay. Queued screenshots are flushed last so they capture
// the finished frame.
func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(e.backgroundColor)

	for _, er := range e.rects {
		strokeRect(screen, er.Rect, e.outlineColor, 1)
	}
	for _, s := range e.buttons {
		e.drawSprite(screen, s)
	}
	for _, handle := range e.highlights {
		strokeRect(screen, handle, e.highlightColor, 1)
	}
	if e.focus != nil {
		strokeRect(screen, e.focus.Rect, e.highlightColor, e.focus.Rect.MinSide()/8)
	}
	for _, f := range e.flashes {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(f.rect.Width, f.rect.Height)
		opts.GeoM.Translate(f.rect.X, f.rect.Y)
		opts.ColorScale.ScaleWithColor(e.highlightColor)
		opts.ColorScale.ScaleAlpha(f.alpha * 0.5)
		screen.DrawImage(whitePixel, opts)
	}
	if e.debug {
		e.overlay.draw(screen)
	}
	e.flushScreenshots(screen)
}

// drawSprite blits an image sprite at its rect, or outlines rect-only
// sprites.
func (e *Editor) drawSprite(screen *ebiten.Image, s *Sprite) {
	switch s.Kind {
	case SpriteImage:
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(s.Rect.X, s.Rect.Y)
		screen.DrawImage(s.Image, opts)
	case SpriteOutline:
		strokeRect(screen, s.Rect, e.outlineColor, 1)
	}
}

// Layout reports the fixed logical screen size (the world bounds).
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(e.world.Width), int(e.world.Height)
}
