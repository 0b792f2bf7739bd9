package reveal

import (
	"image"
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	relative := DefaultStyle()
	absolute := DefaultStyle()
	absolute.FillMode = FillAbsolute
	absolute.FillRadius = 40
	none := DefaultStyle()
	none.FillMode = FillNone

	tests := []struct {
		name         string
		box          Rect
		style        Style
		border, fill float64
		cache        int
	}{
		{"relative wide", Rect{Width: 100, Height: 50}, relative, 75, 150, 300},
		{"relative tall", Rect{Width: 20, Height: 60}, relative, 30, 90, 180},
		{"absolute", Rect{Width: 100, Height: 50}, absolute, 40, 40, 80},
		{"none", Rect{Width: 100, Height: 50}, none, 0, 0, 0},
		{"zero", Rect{}, relative, 0, 0, 0},
		{"rounded", Rect{Top: 0.4, Left: 9.6, Width: 10.5, Height: 10.2}, relative, 15, 16.5, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := measure(tt.box, tt.style)
			if g.BorderRadius != tt.border || g.FillRadius != tt.fill {
				t.Fatalf("radii = %v/%v, want %v/%v", g.BorderRadius, g.FillRadius, tt.border, tt.fill)
			}
			if g.CacheSize != tt.cache {
				t.Fatalf("cache = %d, want %d", g.CacheSize, tt.cache)
			}
		})
	}
}

func TestMeasureRoundsBox(t *testing.T) {
	g := measure(Rect{Top: 10.4, Left: 19.5, Width: 99.6, Height: 49.4}, DefaultStyle())
	if g.Top != 10 || g.Left != 20 || g.Width != 100 || g.Height != 49 {
		t.Fatalf("unexpected geometry %+v", g)
	}
}

func TestClipRect(t *testing.T) {
	g := measure(Rect{Width: 100, Height: 50}, DefaultStyle())
	tests := []struct {
		border BorderStyle
		width  float64
		want   image.Rectangle
	}{
		{BorderFull, 1, image.Rect(1, 1, 99, 49)},
		{BorderHalf, 1, image.Rect(0, 1, 100, 49)},
		{BorderNone, 1, image.Rect(0, 0, 100, 50)},
		{BorderFull, 4, image.Rect(4, 4, 96, 46)},
		{BorderFull, 0, image.Rect(0, 0, 100, 50)},
	}
	for _, tt := range tests {
		s := DefaultStyle()
		s.BorderStyle = tt.border
		s.BorderWidth = tt.width
		if got := clipRect(g, s); got != tt.want {
			t.Errorf("clipRect(%v, %v) = %v, want %v", tt.border, tt.width, got, tt.want)
		}
	}
}

func TestClipRectOverwideBorder(t *testing.T) {
	g := measure(Rect{Width: 10, Height: 6}, DefaultStyle())
	s := DefaultStyle()
	s.BorderWidth = 8
	r := clipRect(g, s)
	if !r.Empty() {
		t.Fatalf("expected empty interior, got %v", r)
	}
	if r.Dx() < 0 || r.Dy() < 0 {
		t.Fatalf("negative interior %v", r)
	}
}

func TestGeometryContains(t *testing.T) {
	g := measure(Rect{Top: 10, Left: 20, Width: 100, Height: 50}, DefaultStyle())
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{20, 10}, true},
		{Point{120, 60}, true},
		{Point{70, 35}, true},
		{Point{19.9, 30}, false},
		{Point{70, 60.1}, false},
		{Point{math.NaN(), 30}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointFinite(t *testing.T) {
	if !(Point{1, 2}).Finite() {
		t.Error("expected finite point")
	}
	if (Point{math.Inf(1), 2}).Finite() || (Point{0, math.NaN()}).Finite() {
		t.Error("expected non-finite points")
	}
}

func TestMeasureBoundsRadius(t *testing.T) {
	tests := []struct {
		name   string
		mode   FillMode
		radius float64
		cache  int
	}{
		{"nan", FillRelative, math.NaN(), 0},
		{"inf", FillAbsolute, math.Inf(1), 0},
		{"negative", FillAbsolute, -5, 0},
		{"huge relative", FillRelative, 100000, MaxCacheSize},
		{"huge absolute", FillAbsolute, 100000, MaxCacheSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			s.FillMode = tt.mode
			s.FillRadius = tt.radius
			g := measure(Rect{Width: 100, Height: 50}, s)
			if g.CacheSize != tt.cache {
				t.Fatalf("cache = %d, want %d", g.CacheSize, tt.cache)
			}
			if g.BorderRadius > g.FillRadius {
				t.Fatalf("border radius %v exceeds fill radius %v", g.BorderRadius, g.FillRadius)
			}

			b, _ := newTestBoundary(t)
			tg := addTarget(t, b, newRecordingSurface(0, 0, 100, 50), s)
			if tg.Cache().Size() != tt.cache {
				t.Fatalf("cached size = %d, want %d", tg.Cache().Size(), tt.cache)
			}
		})
	}
}
