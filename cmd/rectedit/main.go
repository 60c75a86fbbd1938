// Command rectedit opens the rectangle editor in an 800x600 window.
//
// The plus button adds a rectangle; drag rectangles to move them.
// Esc or Q quits, F3 toggles the debug overlay, F12 saves a screenshot.
// Settings are read from rectedit.yaml in the working directory when
// present.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/rectedit"
)

const configPath = "rectedit.yaml"

func main() {
	flag.Parse()

	cfg, err := rectedit.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	ed := rectedit.NewEditor(cfg)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
