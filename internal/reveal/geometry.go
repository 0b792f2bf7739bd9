package reveal

import (
	"image"
	"math"
)

// Point is a position in host coordinates.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned box as reported by a geometry query. Values are
// device pixels and need not be integral.
type Rect struct {
	Top, Left, Width, Height float64
}

// Round returns r with all four values rounded to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{
		Top:    math.Round(r.Top),
		Left:   math.Round(r.Left),
		Width:  math.Round(r.Width),
		Height: math.Round(r.Height),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	x := p.X - r.Left
	y := p.Y - r.Top
	return x >= 0 && x <= r.Width && y >= 0 && y <= r.Height
}

// Image converts r to an image.Rectangle in the same coordinate space.
func (r Rect) Image() image.Rectangle {
	x0 := int(math.Round(r.Left))
	y0 := int(math.Round(r.Top))
	return image.Rect(x0, y0, x0+int(math.Round(r.Width)), y0+int(math.Round(r.Height)))
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Top:    float64(r.Min.Y),
		Left:   float64(r.Min.X),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// Geometry is the rounded snapshot a target paints against.
type Geometry struct {
	Top, Left     int
	Width, Height int
	// BorderRadius and FillRadius are the gradient radii of the two cached
	// layers. FillRadius is never smaller than BorderRadius.
	BorderRadius float64
	FillRadius   float64
	// CacheSize is the side length of both cached bitmaps.
	CacheSize int
}

// Origin returns the top-left corner as a Point.
func (g Geometry) Origin() Point {
	return Point{X: float64(g.Left), Y: float64(g.Top)}
}

// Contains reports whether p, in host coordinates, lies on the target.
func (g Geometry) Contains(p Point) bool {
	return g.ContainsRelative(p.Sub(g.Origin()))
}

// ContainsRelative reports whether p, relative to the top-left corner, lies
// on the target.
func (g Geometry) ContainsRelative(p Point) bool {
	if p.X < 0 || p.X > float64(g.Width) {
		return false
	}
	if p.Y < 0 || p.Y > float64(g.Height) {
		return false
	}
	return true
}

// measure computes the paint geometry of a bounding box under style s.
func measure(box Rect, s Style) Geometry {
	box = box.Round()
	g := Geometry{
		Top:    int(box.Top),
		Left:   int(box.Left),
		Width:  int(box.Width),
		Height: int(box.Height),
	}
	if g.Width < 0 {
		g.Width = 0
	}
	if g.Height < 0 {
		g.Height = 0
	}
	radius := s.FillRadius
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		radius = 0
	}
	switch s.FillMode {
	case FillRelative:
		short, long := float64(g.Width), float64(g.Height)
		if short > long {
			short, long = long, short
		}
		g.BorderRadius = short * radius
		g.FillRadius = long * radius
	case FillAbsolute:
		g.BorderRadius = radius
		g.FillRadius = radius
	}
	if g.FillRadius > MaxCacheSize/2 {
		g.FillRadius = MaxCacheSize / 2
		g.BorderRadius = math.Min(g.BorderRadius, g.FillRadius)
	}
	g.CacheSize = int(g.FillRadius * 2)
	return g
}

// MaxCacheSize bounds the side of a cached bitmap. Larger fill radii are
// clamped so one layer never exceeds 4 MiB.
const MaxCacheSize = 1024

// clipRect returns the interior rectangle, relative to the target origin,
// that the fill layer is confined to for the given border style.
func clipRect(g Geometry, s Style) image.Rectangle {
	bw := int(math.Round(s.BorderWidth))
	var r image.Rectangle
	switch s.BorderStyle {
	case BorderFull:
		r = image.Rectangle{Min: image.Pt(bw, bw), Max: image.Pt(g.Width-bw, g.Height-bw)}
	case BorderHalf:
		r = image.Rectangle{Min: image.Pt(0, bw), Max: image.Pt(g.Width, g.Height-bw)}
	default:
		r = image.Rectangle{Max: image.Pt(g.Width, g.Height)}
	}
	// A border wider than half the target leaves an empty interior.
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}
