package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "same tile",
			a:        NewRect(64, 32, 32, 32),
			b:        NewRect(64, 32, 32, 32),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent tiles horizontal",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(32, 0, 32, 32),
			expected: false,
		},
		{
			name:     "adjacent tiles vertical",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(0, 32, 32, 32),
			expected: false,
		},
		{
			name:     "diagonal neighbours",
			a:        NewRect(0, 0, 32, 32),
			b:        NewRect(32, 32, 32, 32),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 64, 64),
			b:        NewRect(16, 16, 8, 8),
			expected: true,
		},
		{
			name:     "zero size never hits",
			a:        NewRect(10, 10, 0, 0),
			b:        NewRect(0, 0, 32, 32),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTileOverlapIsBinary(t *testing.T) {
	const tile = 32
	for ax := 0; ax < 4; ax++ {
		for ay := 0; ay < 4; ay++ {
			for bx := 0; bx < 4; bx++ {
				for by := 0; by < 4; by++ {
					a := NewRect(ax*tile, ay*tile, tile, tile)
					b := NewRect(bx*tile, by*tile, tile, tile)
					same := ax == bx && ay == by
					if a.Intersects(b) != same {
						t.Fatalf("tiles (%d,%d) and (%d,%d): Intersects = %v, expected %v",
							ax, ay, bx, by, a.Intersects(b), same)
					}
				}
			}
		}
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

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 32, Y: 64}
	v := Point{X: -1, Y: 0}

	got := p.Add(v.Scale(32))
	if got != (Point{X: 0, Y: 64}) {
		t.Errorf("Add(Scale) = %v, expected {0 64}", got)
	}
	if !(Point{}).IsZero() {
		t.Error("zero point should report IsZero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{5, 10, 5},
		{10, 10, 0},
		{-1, 10, 9},
		{-11, 10, 9},
		{7, 0, 7},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned a value outside [min, max]")
	}
}
