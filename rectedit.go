package rectedit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// whitePixel is a 1x1 white image used for solid color fills.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. A zero-area rectangle
// contains nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MinSide returns the shorter of the rectangle's two sides.
func (r Rect) MinSide() float64 {
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// SetCenter moves the rectangle so its center is at (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.X = x - r.Width/2
	r.Y = y - r.Height/2
}

// SetTopLeft moves the rectangle so its top-left corner is at (x, y).
func (r *Rect) SetTopLeft(x, y float64) {
	r.X = x
	r.Y = y
}

// SetTopRight moves the rectangle so its top-right corner is at (x, y).
func (r *Rect) SetTopRight(x, y float64) {
	r.X = x - r.Width
	r.Y = y
}

// SetBottomLeft moves the rectangle so its bottom-left corner is at (x, y).
func (r *Rect) SetBottomLeft(x, y float64) {
	r.X = x
	r.Y = y - r.Height
}

// SetBottomRight moves the rectangle so its bottom-right corner is at (x, y).
func (r *Rect) SetBottomRight(x, y float64) {
	r.X = x - r.Width
	r.Y = y - r.Height
}

// fillRect fills r on dst with a solid color by scaling whitePixel.
func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(r.Width, r.Height)
	opts.GeoM.Translate(r.X, r.Y)
	opts.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel, opts)
}

// strokeRect outlines r on dst with four edge strips of the given
// thickness, drawn inside the rectangle.
func strokeRect(dst *ebiten.Image, r Rect, clr color.Color, width float64) {
	if width <= 0 {
		return
	}
	fillRect(dst, Rect{r.X, r.Y, r.Width, width}, clr)
	fillRect(dst, Rect{r.X, r.Bottom() - width, r.Width, width}, clr)
	fillRect(dst, Rect{r.X, r.Y, width, r.Height}, clr)
	fillRect(dst, Rect{r.Right() - width, r.Y, width, r.Height}, clr)
}
