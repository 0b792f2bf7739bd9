package reveal

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// GradientStop is one color stop. Alpha overrides the color's own alpha.
type GradientStop struct {
	Offset float64
	Color  color.RGBA
	Alpha  float64
}

// RadialGradient is a two-point radial gradient: t runs from 0 at Focus to
// 1 on the circle of Radius around Center. Focus equal to Center gives a
// plain circular gradient.
type RadialGradient struct {
	Focus  Point
	Center Point
	Radius float64
	Stops  []GradientStop
}

// Brush converts g to a gg brush.
func (g RadialGradient) Brush() *gg.RadialGradientBrush {
	b := gg.NewRadialGradientBrush(g.Center.X, g.Center.Y, 0, g.Radius).
		SetFocus(g.Focus.X, g.Focus.Y)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, gg.RGBA2(
			float64(s.Color.R)/255,
			float64(s.Color.G)/255,
			float64(s.Color.B)/255,
			clampUnit(s.Alpha),
		))
	}
	return b
}

// Empty reports whether painting g would leave every pixel untouched.
func (g RadialGradient) Empty() bool {
	return g.Radius <= 0 || math.IsNaN(g.Radius) || len(g.Stops) == 0
}

// Rasterize writes g into r of dst. With over set the gradient is
// composited source-over, otherwise it replaces the pixels. The gradient is
// sampled at pixel centres in dst's coordinate space.
func (g RadialGradient) Rasterize(dst *image.RGBA, r image.Rectangle, over bool) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() || g.Empty() {
		return
	}
	brush := g.Brush()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			c := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			a := clampUnit(c.A)
			sr := clampUnit(c.R) * a * 255
			sg := clampUnit(c.G) * a * 255
			sb := clampUnit(c.B) * a * 255
			sa := a * 255
			px := dst.Pix[i : i+4 : i+4]
			if over {
				inv := 1 - a
				sr += float64(px[0]) * inv
				sg += float64(px[1]) * inv
				sb += float64(px[2]) * inv
				sa += float64(px[3]) * inv
			}
			px[0] = to8(sr)
			px[1] = to8(sg)
			px[2] = to8(sb)
			px[3] = to8(sa)
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
