package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	xdraw "golang.org/x/image/draw"
)

// Plate is the visible body of a target drawn underneath its reveal layer.
type Plate struct {
	Rect  image.Rectangle
	Fill  color.Color
	Label string
	Text  color.Color
}

// Scale resizes img to size with bilinear filtering. An empty size returns a
// zero-origin copy.
func Scale(img image.Image, size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		size = img.Bounds().Size()
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if img.Bounds().Size() == size {
		xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Fill paints dst with c.
func Fill(dst *image.RGBA, c color.Color) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// DrawBackdrop covers dst with img, stretching it when the sizes differ.
func DrawBackdrop(dst *image.RGBA, img image.Image) {
	if img.Bounds().Size() == dst.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
}

// DrawPlates paints the plates and centres each label in its rectangle.
func DrawPlates(dst *image.RGBA, plates []Plate) {
	for _, p := range plates {
		if p.Fill != nil {
			xdraw.Draw(dst, p.Rect, image.NewUniform(p.Fill), image.Point{}, xdraw.Over)
		}
		if p.Label == "" || p.Text == nil {
			continue
		}
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(p.Text), Face: basicfont.Face7x13}
		w := d.MeasureString(p.Label).Ceil()
		x := p.Rect.Min.X + (p.Rect.Dx()-w)/2
		y := p.Rect.Min.Y + (p.Rect.Dy()+basicfont.Face7x13.Ascent-basicfont.Face7x13.Descent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(p.Label)
	}
}

// Composite draws every surface buffer over dst at its layout position.
func Composite(dst *image.RGBA, surfaces []*ImageSurface) {
	for _, s := range surfaces {
		if !s.Available() {
			continue
		}
		img := s.Image()
		r := img.Bounds().Add(s.Rect().Min)
		xdraw.Draw(dst, r, img, image.Point{}, xdraw.Over)
	}
}
