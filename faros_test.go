package faros

import (
	"math/rand/v2"
	"testing"
)

func TestRGB8(t *testing.T) {
	c := RGB8(255, 0, 51)
	if c.R != 1 || c.G != 0 || !approxEqual(c.B, 0.2, epsilon) || c.A != 1 {
		t.Errorf("RGB8 = %+v", c)
	}
}

func TestColorWithAlphaClamps(t *testing.T) {
	if got := ColorWhite.WithAlpha(2).A; got != 1 {
		t.Errorf("WithAlpha(2).A = %v, want 1", got)
	}
	if got := ColorWhite.WithAlpha(-1).A; got != 0 {
		t.Errorf("WithAlpha(-1).A = %v, want 0", got)
	}
}

func TestColorToRGBAPremultiplied(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	if got.R != 128 || got.G != 64 || got.B != 0 || got.A != 128 {
		t.Errorf("toRGBA = %+v, want {128 64 0 128}", got)
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{30, 30, true},
		{20, 20, true},
		{9.9, 20, false},
		{20, 30.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectOverlapsExcludesTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"partial", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching right", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching bottom", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		if got := a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Overlaps(a); got != tt.want {
			t.Errorf("%s: reverse Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectInflateAndCenter(t *testing.T) {
	r := RectCentered(50, 40, 20, 10).Inflate(5)
	want := Rect{X: 35, Y: 30, Width: 30, Height: 20}
	if r != want {
		t.Errorf("Inflate = %+v, want %+v", r, want)
	}
	if c := r.Center(); c != (Vec2{50, 40}) {
		t.Errorf("Center = %+v, want (50,40)", c)
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if got := a.Add(Vec2{1, 1}).Sub(Vec2{4, 5}); got != (Vec2{}) {
		t.Errorf("Add/Sub = %+v, want zero", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if d := a.Dist(Vec2{}); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := Range{Min: 2, Max: 6}
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 2 || v >= 6 {
			t.Fatalf("Random = %v, outside [2, 6)", v)
		}
	}
	if v := (Range{Min: 3, Max: 3}).Random(rng); v != 3 {
		t.Errorf("degenerate Random = %v, want 3", v)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d    Direction
		want Vec2
		name string
	}{
		{DirLeft, Vec2{-1, 0}, "left"},
		{DirRight, Vec2{1, 0}, "right"},
		{DirUp, Vec2{0, -1}, "up"},
		{DirDown, Vec2{0, 1}, "down"},
		{DirNone, Vec2{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.d.Delta(); got != tt.want {
			t.Errorf("%v.Delta() = %+v, want %+v", tt.d, got, tt.want)
		}
		if got := tt.d.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}
