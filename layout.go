package rectedit

// LayoutHorizontal moves rects in place so each one's left edge sits at
// the previous one's right edge plus padding. The first rect stays put.
func LayoutHorizontal(rects []*Rect, padding float64) {
	for i := 1; i < len(rects); i++ {
		rects[i].X = rects[i-1].Right() + padding
	}
}

// LayoutVertical moves rects in place so each one's top edge sits at
// the previous one's bottom edge plus padding. The first rect stays put.
func LayoutVertical(rects []*Rect, padding float64) {
	for i := 1; i < len(rects); i++ {
		rects[i].Y = rects[i-1].Bottom() + padding
	}
}
