package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separate", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
		{"vertical only", NewRect(0, 0, 5, 5), NewRect(0, 10, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 10, 10), true},
		{"touching edges", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"separate", NewRectF(0, 0, 5, 5), NewRectF(100, 0, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFCenter(t *testing.T) {
	r := NewRectF(10, 20, 4, 6)
	if r.CenterX() != 12 {
		t.Errorf("CenterX() = %v, want 12", r.CenterX())
	}
	if r.CenterY() != 23 {
		t.Errorf("CenterY() = %v, want 23", r.CenterY())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains(5,5) should be true (top-left inclusive)")
	}
	if r.Contains(15, 15) {
		t.Error("Contains(15,15) should be false (bottom-right exclusive)")
	}
	if !r.Contains(10, 10) {
		t.Error("Contains(10,10) should be true")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, want 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, want 0.25", got)
	}
}
