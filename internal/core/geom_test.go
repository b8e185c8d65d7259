package core

import "testing"

func TestRectContains(t *testing.T) {
	board := NewRect(4, 1, 22, 22)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left border", 4, 1, true},
		{"inside", 10, 10, true},
		{"last column", 25, 5, true},
		{"right edge is exclusive", 26, 5, false},
		{"bottom edge is exclusive", 10, 23, false},
		{"left of board", 3, 5, false},
		{"HUD row", 10, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(2, 4, 21, 10)

	if r.Right() != 23 || r.Bottom() != 14 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 23, 14", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 12 || y != 9 {
		t.Errorf("Center() = (%d, %d), expected (12, 9)", x, y)
	}
}

func TestCenterAt(t *testing.T) {
	tests := []struct {
		name             string
		cx, cy           int
		w, h             int
		expectX, expectY int
	}{
		{"even size", 15, 11, 10, 4, 10, 9},
		{"odd size", 15, 11, 9, 3, 11, 10},
		{"clamped at origin", 2, 1, 10, 6, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenterAt(tc.cx, tc.cy, tc.w, tc.h)
			if r.X != tc.expectX || r.Y != tc.expectY || r.W != tc.w || r.H != tc.h {
				t.Errorf("CenterAt() = %+v, expected corner (%d, %d) size %dx%d",
					r, tc.expectX, tc.expectY, tc.w, tc.h)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(3, 5, 12, 6).Inset(1)
	if r != NewRect(4, 6, 10, 4) {
		t.Errorf("Inset(1) = %+v, expected {4 6 10 4}", r)
	}

	if tiny := NewRect(0, 0, 1, 1).Inset(1); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset on a 1x1 rect = %+v, expected zero size", tiny)
	}
}
