package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVec2(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Add = %v, expected (4, 5)", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Sub = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale = %v, expected (6, 8)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{"axis", V(0, -10), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			if got.Sub(tc.expected).Len() > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorRed},
		{25, ColorRed},
		{40, ColorOrange},
		{60, ColorYellow},
		{100, ColorGreen},
	}

	for _, tc := range tests {
		if got := HealthColor(tc.value); got != tc.expected {
			t.Errorf("HealthColor(%d) = %v, expected %v", tc.value, got, tc.expected)
		}
	}
}

