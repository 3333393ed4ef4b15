package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		r, want Rect
	}{
		{NewRect(0, 1, 16, 9), NewRect(1, 2, 14, 7)},
		{NewRect(4, 4, 2, 2), NewRect(5, 5, 0, 0)},
		{NewRect(0, 0, 1, 1), NewRect(1, 1, 0, 0)},
	}
	for _, tc := range tests {
		if got := tc.r.Inner(); got != tc.want {
			t.Errorf("%+v.Inner() = %+v, expected %+v", tc.r, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 {
		t.Error("Max(3, 7) should be 7")
	}
	if Max(7, 3) != 7 {
		t.Error("Max(7, 3) should be 7")
	}
	if Max(-1, -1) != -1 {
		t.Error("Max(-1, -1) should be -1")
	}
}
