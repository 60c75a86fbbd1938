package rectedit

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawing primitives mutate the given image in place. Strip geometry is
// computed in integer pixel space by pure helpers so it can be verified
// without a render target.

// borderStrips returns the four edge strips (top, right, bottom, left)
// for a w x h image. Top and bottom strips span the full width; left and
// right strips span the full height; right and bottom are anchored to
// the far edges.
func borderStrips(w, h int, width Shorthand) [4]image.Rectangle {
	return [4]image.Rectangle{
		image.Rect(0, 0, w, width.Top),
		image.Rect(w-width.Right, 0, w, h),
		image.Rect(0, h-width.Bottom, w, h),
		image.Rect(0, 0, width.Left, h),
	}
}

// hbarRect returns a horizontal bar of the given thickness, centered
// vertically within the w x h area after insetting it by padding.
func hbarRect(w, h, lineWidth int, padding Shorthand) image.Rectangle {
	inner := image.Rect(padding.Left, padding.Top, w-padding.Right, h-padding.Bottom)
	midY := (inner.Min.Y + inner.Max.Y) / 2
	top := midY - lineWidth/2
	return image.Rect(inner.Min.X, top, inner.Max.X, top+lineWidth)
}

// vbarRect returns a vertical bar of the given thickness, centered
// horizontally within the w x h area after insetting it by padding.
func vbarRect(w, h, lineWidth int, padding Shorthand) image.Rectangle {
	inner := image.Rect(padding.Left, padding.Top, w-padding.Right, h-padding.Bottom)
	midX := (inner.Min.X + inner.Max.X) / 2
	left := midX - lineWidth/2
	return image.Rect(left, inner.Min.Y, left+lineWidth, inner.Max.Y)
}

// fillStrip fills a pixel rectangle on img, clamped to the image bounds.
func fillStrip(img *ebiten.Image, strip image.Rectangle, clr color.Color) {
	b := img.Bounds()
	strip = strip.Add(b.Min).Intersect(b)
	if strip.Empty() {
		return
	}
	img.SubImage(strip).(*ebiten.Image).Fill(clr)
}

// DrawBorder draws a border around the edges of img. Each side's
// thickness comes from the corresponding Shorthand value.
func DrawBorder(img *ebiten.Image, clr color.Color, width Shorthand) {
	b := img.Bounds()
	for _, strip := range borderStrips(b.Dx(), b.Dy(), width) {
		fillStrip(img, strip, clr)
	}
}

// DrawHBar draws a horizontal bar centered in img, inset by padding.
func DrawHBar(img *ebiten.Image, clr color.Color, lineWidth int, padding Shorthand) {
	b := img.Bounds()
	fillStrip(img, hbarRect(b.Dx(), b.Dy(), lineWidth, padding), clr)
}

// DrawVBar draws a vertical bar centered in img, inset by padding.
func DrawVBar(img *ebiten.Image, clr color.Color, lineWidth int, padding Shorthand) {
	b := img.Bounds()
	fillStrip(img, vbarRect(b.Dx(), b.Dy(), lineWidth, padding), clr)
}

// DrawCross draws a centered cross: an hbar and a vbar sharing the same
// thickness and padding.
func DrawCross(img *ebiten.Image, clr color.Color, lineWidth int, padding Shorthand) {
	DrawHBar(img, clr, lineWidth, padding)
	DrawVBar(img, clr, lineWidth, padding)
}
