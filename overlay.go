package rectedit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugOverlay displays FPS/TPS and the rectangle count in the top-left
// corner. Refreshed every ~0.5 seconds to stay readable.
type debugOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func newDebugOverlay() *debugOverlay {
	// 120x48 is enough for three DebugPrint lines.
	return &debugOverlay{img: ebiten.NewImage(120, 48), elapsed: 1}
}

func (o *debugOverlay) update(dt float64, rectCount int) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRects: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), rectCount))
}

func (o *debugOverlay) draw(screen *ebiten.Image) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, opts)
}
