package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "shot inside enemy",
			a:        NewRect(100, 100, 40, 40),
			b:        NewRect(118, 120, 5, 15),
			expected: true,
		},
		{
			name:     "shot left of enemy",
			a:        NewRect(100, 100, 40, 40),
			b:        NewRect(90, 120, 5, 15),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewRect(100, 100, 40, 40),
			b:        NewRect(140, 100, 5, 15),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRect(100, 100, 40, 40),
			b:        NewRect(110, 140, 5, 15),
			expected: false,
		},
		{
			name:     "one pixel overlap",
			a:        NewRect(0, 0, 50, 60),
			b:        NewRect(49, 59, 30, 30),
			expected: true,
		},
		{
			name:     "enemy above field",
			a:        NewRect(0, -50, 50, 50),
			b:        NewRect(0, 0, 50, 60),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
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

func TestRectEdges(t *testing.T) {
	r := NewRect(380, 450, 50, 60)

	if r.Right() != 430 {
		t.Errorf("Right() = %d, expected 430", r.Right())
	}
	if r.Bottom() != 510 {
		t.Errorf("Bottom() = %d, expected 510", r.Bottom())
	}
	if r.CenterX() != 405 {
		t.Errorf("CenterX() = %d, expected 405", r.CenterX())
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"ship", NewRect(380, 450, 50, 60), NewRect(38, 18, 5, 3)},
		{"tiny shot still visible", NewRect(403, 300, 5, 15), NewRect(40, 12, 1, 1)},
		{"above the field", NewRect(0, -50, 40, 40), NewRect(0, -2, 4, 2)},
		{"origin", NewRect(0, 0, 800, 600), NewRect(0, 0, 80, 24)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scale(800, 600, 80, 24)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if got := NewRect(1, 1, 1, 1).Scale(0, 600, 80, 24); got != (Rect{}) {
		t.Errorf("Scale() on empty field = %+v, expected zero rect", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 750, 5},
		{-5, 0, 750, 0},
		{755, 0, 750, 750},
		{0, 0, 540, 0},
		{540, 0, 540, 540},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(15, 51) != 51 {
		t.Error("Max(15, 51) should be 51")
	}
	if Max(15, -3) != 15 {
		t.Error("Max(15, -3) should be 15")
	}
}
