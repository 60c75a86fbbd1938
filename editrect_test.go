package rectedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResizeHandlesSquare(t *testing.T) {
	er := NewEditRect(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	handles := er.ResizeHandles()
	want := [4]Rect{
		{X: 0, Y: 0, Width: 25, Height: 25},
		{X: 75, Y: 0, Width: 25, Height: 25},
		{X: 75, Y: 75, Width: 25, Height: 25},
		{X: 0, Y: 75, Width: 25, Height: 25},
	}
	if diff := cmp.Diff(want, handles); diff != "" {
		t.Errorf("ResizeHandles mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeHandlesCornerAlignment(t *testing.T) {
	er := NewEditRect(Rect{X: 40, Y: 60, Width: 120, Height: 80})

	// Handle side is min(120, 80)/4 = 20.
	tests := []struct {
		name   string
		handle Rect
		x, y   float64 // expected corner position
	}{
		{"topleft", er.TopLeftResizeHandle(), 40, 60},
		{"topright", er.TopRightResizeHandle(), 140, 60},
		{"bottomright", er.BottomRightResizeHandle(), 140, 120},
		{"bottomleft", er.BottomLeftResizeHandle(), 40, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.handle.Width != 20 || tt.handle.Height != 20 {
				t.Errorf("handle size = %vx%v, want 20x20", tt.handle.Width, tt.handle.Height)
			}
			if tt.handle.X != tt.x || tt.handle.Y != tt.y {
				t.Errorf("handle position = (%v, %v), want (%v, %v)",
					tt.handle.X, tt.handle.Y, tt.x, tt.y)
			}
		})
	}

	// The corners coincide with the owning rectangle's corners.
	if r := er.TopRightResizeHandle(); r.Right() != er.Rect.Right() {
		t.Errorf("topright handle right edge = %v, want %v", r.Right(), er.Rect.Right())
	}
	if r := er.BottomRightResizeHandle(); r.Bottom() != er.Rect.Bottom() {
		t.Errorf("bottomright handle bottom edge = %v, want %v", r.Bottom(), er.Rect.Bottom())
	}
}

func TestResizeHandlesRecomputed(t *testing.T) {
	er := NewEditRect(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	before := er.TopLeftResizeHandle()
	er.Rect.X += 50
	after := er.TopLeftResizeHandle()

	if after.X != before.X+50 {
		t.Errorf("handle did not track the rectangle: before X=%v, after X=%v", before.X, after.X)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContainsZeroArea(t *testing.T) {
	r := Rect{X: 10, Y: 10}
	if r.Contains(10, 10) {
		t.Error("zero-area rect should contain nothing")
	}
}
