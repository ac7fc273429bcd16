package core

import "testing"

func TestRectIntersects(t *testing.T) {
	drone := NewRect(400, 504, 96, 96)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(450, 520, 8, 52), true},
		{"inside", NewRect(410, 510, 10, 10), true},
		{"touching left edge", NewRect(392, 520, 8, 52), false},
		{"touching right edge", NewRect(496, 520, 8, 52), false},
		{"above", NewRect(420, 440, 8, 52), false},
		{"touching top", NewRect(420, 452, 8, 52), false},
		{"overlap by a fraction", NewRect(495.5, 520, 8, 52), true},
		{"empty width", NewRect(420, 520, 0, 52), false},
		{"negative height", NewRect(420, 520, 8, -4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := drone.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(drone); got != tc.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectShrink(t *testing.T) {
	r := NewRect(100, 200, 192, 160)
	got := r.Shrink(20)
	want := NewRect(120, 220, 72, 100)
	if got != want {
		t.Errorf("Shrink(20) = %+v, want %+v", got, want)
	}

	// Sprites narrower than 6*pad lose their hit box entirely
	small := NewRect(0, 0, 96, 96).Shrink(20)
	if !small.Empty() {
		t.Errorf("Shrink of 96px sprite should be empty, got %+v", small)
	}

	if NewRect(3, 4, 5, 6).Shrink(0) != NewRect(3, 4, 5, 6) {
		t.Error("Shrink(0) changed the rectangle")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15.5)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, want 25", r.Right())
	}
	if r.Bottom() != 25.5 {
		t.Errorf("Bottom() = %v, want 25.5", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true for a rectangle with area")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5.5, 0, 736, 5.5},
		{-6, 0, 736, 0},
		{742, 0, 736, 736},
		{736, 0, 736, 736},
		{0, 0, 736, 0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
