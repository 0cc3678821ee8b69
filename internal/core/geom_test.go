package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "player standing on ground against low obstacle",
			a:        NewRect(100, 230, 50, 50),
			b:        NewRect(100, 195, 50, 50),
			expected: true,
		},
		{
			name:     "player against distant obstacle",
			a:        NewRect(100, 230, 50, 50),
			b:        NewRect(500, 195, 50, 50),
			expected: false,
		},
		{
			name:     "zero-width rect never overlaps",
			a:        NewRect(0, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportScaling(t *testing.T) {
	v := Viewport{WorldW: 900, WorldH: 350, ScreenW: 90, ScreenH: 35}

	if got := v.X(100); got != 10 {
		t.Errorf("X(100) = %d, expected 10", got)
	}
	if got := v.Y(230); got != 23 {
		t.Errorf("Y(230) = %d, expected 23", got)
	}
	if got := v.X(-45); got != -5 {
		t.Errorf("X(-45) = %d, expected -5", got)
	}

	r := v.Rect(NewRect(100, 230, 50, 50))
	if r != NewRect(10, 23, 5, 5) {
		t.Errorf("Rect() = %+v, expected {10 23 5 5}", r)
	}

	// Tiny objects still cover a cell
	tiny := v.Rect(NewRect(0, 0, 3, 3))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect should cover one cell, got %+v", tiny)
	}
}

func TestViewportZeroWorld(t *testing.T) {
	v := Viewport{ScreenW: 80, ScreenH: 24}
	if v.X(10) != 0 || v.Y(10) != 0 {
		t.Error("zero-sized world should map everything to origin")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
