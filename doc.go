// Package rectedit is a prototype rectangle editor for [Ebitengine].
//
// The editor opens a window, shows a small toolbar in the bottom-left
// corner, and lets the user add rectangles and drag them around. Corner
// resize handles light up under the pointer.
//
// # Quick start
//
//	cfg, err := rectedit.LoadConfig("rectedit.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ed := rectedit.NewEditor(cfg)
//	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
//	ebiten.SetWindowTitle(cfg.Window.Title)
//	if err := ebiten.RunGame(ed); err != nil {
//		log.Fatal(err)
//	}
//
// # Event bus
//
// Input is decoupled from editor actions through an [Editor]-owned [Bus].
// The game loop publishes a closed set of event variants ([QuitEvent],
// [KeyDownEvent], [PointerDownEvent], [PointerUpEvent],
// [PointerMoveEvent]); listeners registered with [Bus.Listen] receive
// them synchronously in registration order. Commands ([AddRectCommand],
// [MoveRectCommand]) subscribe and unsubscribe transient listeners for
// the duration of an interaction.
//
// Everything is single-threaded: all state is owned by the Editor and
// mutated only from Update and Draw.
//
// [Ebitengine]: https://ebitengine.org
package rectedit
