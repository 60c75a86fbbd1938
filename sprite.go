package rectedit

import "github.com/hajimehoshi/ebiten/v2"

// SpriteKind distinguishes how a sprite is drawn. The kind is decided at
// construction time, never inferred from field presence.
type SpriteKind uint8

const (
	SpriteImage   SpriteKind = iota // blits Image at Rect
	SpriteOutline                   // draws a 1px outline of Rect
)

// Sprite pairs a rectangle with an optional image, an optional bound
// command, and a free-form property mapping. Toolbar buttons are image
// sprites with a Command.
type Sprite struct {
	Kind    SpriteKind
	Image   *ebiten.Image
	Rect    Rect
	Command Command
	Props   map[string]string
}

// NewImageSprite creates a sprite that blits img at r.
func NewImageSprite(img *ebiten.Image, r Rect) *Sprite {
	return &Sprite{
		Kind:  SpriteImage,
		Image: img,
		Rect:  r,
		Props: make(map[string]string),
	}
}

// NewOutlineSprite creates a sprite drawn as a 1px rectangle outline.
func NewOutlineSprite(r Rect) *Sprite {
	return &Sprite{
		Kind:  SpriteOutline,
		Rect:  r,
		Props: make(map[string]string),
	}
}
