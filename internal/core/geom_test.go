package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(0, 0, 10, 6).Center()
	if x != 5 || y != 3 {
		t.Errorf("Center() = (%d, %d), expected (5, 3)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
