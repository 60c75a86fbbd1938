package rectedit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// buttonWidthDenominator divides a button's side length to get an
// appealing, thick line width for the icon inside it.
const buttonWidthDenominator = 5

// RenderCross creates a size x size image with a centered cross.
func RenderCross(size int, clr color.Color, lineWidth int, padding Shorthand) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	DrawCross(img, clr, lineWidth, padding)
	return img
}

// RenderMinusButton renders an opinionated minus button: a horizontal
// bar padded by size/5 with a border of half that width.
func RenderMinusButton(size int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	width := size / buttonWidthDenominator
	DrawHBar(img, clr, width, Uniform(width))
	DrawBorder(img, clr, Uniform(width/2))
	return img
}

// RenderPlusButton renders an opinionated plus button: a cross with the
// same proportions as the minus button's bar.
func RenderPlusButton(size int, clr color.Color) *ebiten.Image {
	width := size / buttonWidthDenominator
	img := RenderCross(size, clr, width, Uniform(width))
	DrawBorder(img, clr, Uniform(width/2))
	return img
}
