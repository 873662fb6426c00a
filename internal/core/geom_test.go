package core

import "testing"

func TestBoundsSeparated(t *testing.T) {
	base := BoundsOf(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    Bounds
		expected bool
	}{
		{"overlapping", BoundsOf(5, 5, 10, 10), false},
		{"gap to the right", BoundsOf(15, 0, 10, 10), true},
		{"gap below", BoundsOf(0, 15, 10, 10), true},
		{"gap to the left", BoundsOf(-20, 0, 10, 10), true},
		{"gap above", BoundsOf(0, -20, 10, 10), true},
		{"touching edge is not a gap", BoundsOf(10, 0, 10, 10), false},
		{"touching corner is not a gap", BoundsOf(10, 10, 10, 10), false},
		{"contained", BoundsOf(2, 2, 3, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Separated(tc.other); got != tc.expected {
				t.Errorf("Separated() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.other.Separated(base); got != tc.expected {
				t.Errorf("Separated() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsAccessors(t *testing.T) {
	b := BoundsOf(90, 90, 20, 30)

	if b.Right != 110 || b.Bottom != 120 {
		t.Errorf("BoundsOf edges = (%v, %v), expected (110, 120)", b.Right, b.Bottom)
	}
	if b.Width() != 20 || b.Height() != 30 {
		t.Errorf("size = %vx%v, expected 20x30", b.Width(), b.Height())
	}
	if b.CenterX() != 100 {
		t.Errorf("CenterX() = %v, expected 100", b.CenterX())
	}
	if !b.ContainsX(90) || !b.ContainsX(110) || b.ContainsX(110.5) {
		t.Error("ContainsX should be inclusive on both edges")
	}
	if !b.ContainsY(120) || b.ContainsY(89.9) {
		t.Error("ContainsY should be inclusive on both edges")
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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
