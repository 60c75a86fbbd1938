package rectedit

// EditRect is an editable rectangle with derived corner resize handles.
// Handles are recomputed on every query; callers must not assume handle
// identity is stable across calls.
type EditRect struct {
	Rect Rect
}

// NewEditRect creates an editable rectangle.
func NewEditRect(r Rect) *EditRect {
	return &EditRect{Rect: r}
}

// handleRect returns an unpositioned handle square with side min(w,h)/4.
func (er *EditRect) handleRect() Rect {
	size := er.Rect.MinSide() / 4
	return Rect{Width: size, Height: size}
}

// TopLeftResizeHandle returns the handle whose top-left corner coincides
// with the rectangle's top-left corner.
func (er *EditRect) TopLeftResizeHandle() Rect {
	r := er.handleRect()
	r.SetTopLeft(er.Rect.X, er.Rect.Y)
	return r
}

// TopRightResizeHandle returns the handle aligned to the top-right corner.
func (er *EditRect) TopRightResizeHandle() Rect {
	r := er.handleRect()
	r.SetTopRight(er.Rect.Right(), er.Rect.Y)
	return r
}

// BottomRightResizeHandle returns the handle aligned to the bottom-right corner.
func (er *EditRect) BottomRightResizeHandle() Rect {
	r := er.handleRect()
	r.SetBottomRight(er.Rect.Right(), er.Rect.Bottom())
	return r
}

// BottomLeftResizeHandle returns the handle aligned to the bottom-left corner.
func (er *EditRect) BottomLeftResizeHandle() Rect {
	r := er.handleRect()
	r.SetBottomLeft(er.Rect.X, er.Rect.Bottom())
	return r
}

// ResizeHandles returns the four corner handles in top-left, top-right,
// bottom-right, bottom-left order.
func (er *EditRect) ResizeHandles() [4]Rect {
	return [4]Rect{
		er.TopLeftResizeHandle(),
		er.TopRightResizeHandle(),
		er.BottomRightResizeHandle(),
		er.BottomLeftResizeHandle(),
	}
}
