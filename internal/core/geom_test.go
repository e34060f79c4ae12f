package core

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
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
			name:     "touching horizontally",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertically",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 4, 12),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(100, 200, 40, 40).Inset(8)

	if r.X != 108 || r.Y != 208 || r.W != 24 || r.H != 24 {
		t.Errorf("Inset(8) = %+v, expected {108 208 24 24}", r)
	}

	tiny := NewRect(0, 0, 4, 4).Inset(10)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset larger than size should collapse to zero, got %+v", tiny)
	}
	if tiny.X != 2 || tiny.Y != 2 {
		t.Errorf("Collapsed inset should sit at the center, got %+v", tiny)
	}
}

func TestRectOutside(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(10, 10, 4, 4), false},
		{"partially above", NewRect(10, -2, 4, 4), false},
		{"fully above", NewRect(10, -5, 4, 4), true},
		{"fully below", NewRect(10, 101, 4, 4), true},
		{"fully left", NewRect(-5, 10, 4, 4), true},
		{"fully right", NewRect(101, 10, 4, 4), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Outside(100, 100); got != tc.want {
				t.Errorf("Outside() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Normalize(3, 4) = (%v, %v), expected (0.6, 0.8)", x, y)
	}

	x, y = Normalize(0, 0)
	if x != 0 || y != 1 {
		t.Errorf("Normalize(0, 0) = (%v, %v), expected fallback (0, 1)", x, y)
	}

	x, y = Normalize(math.NaN(), 1)
	if x != 0 || y != 1 {
		t.Errorf("Normalize(NaN, 1) = (%v, %v), expected fallback (0, 1)", x, y)
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
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
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned an unexpected value")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionFire)
	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionFire) || !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestCueString(t *testing.T) {
	if CueBossHit.String() != "BossHit" || CueSessionStart.String() != "SessionStart" {
		t.Error("unexpected cue names")
	}
	if Cue(99).String() != "Unknown" {
		t.Error("unknown cue should stringify as Unknown")
	}
}
