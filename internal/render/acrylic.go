package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// AcrylicOptions configures the frosted backdrop material.
type AcrylicOptions struct {
	Radius  int
	Tint    color.RGBA
	Opacity float64
}

// DefaultAcrylicOptions returns a soft blur with a light white tint.
func DefaultAcrylicOptions() AcrylicOptions {
	return AcrylicOptions{
		Radius:  12,
		Tint:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Opacity: 0.35,
	}
}

// Acrylic returns a blurred and tinted copy of img. The result has the same
// size as img with a zero origin.
func Acrylic(img image.Image, opts AcrylicOptions) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(src, src.Bounds(), img, b.Min, xdraw.Src)
	if src.Bounds().Empty() {
		return src
	}

	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}
	out := blurRGBA(src, radius)

	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	if opacity > 0 {
		a := uint8(opacity*255 + 0.5)
		tint := color.NRGBA{R: opts.Tint.R, G: opts.Tint.G, B: opts.Tint.B, A: a}
		xdraw.Draw(out, out.Bounds(), image.NewUniform(tint), image.Point{}, xdraw.Over)
	}
	return out
}

// blurRGBA box-blurs every channel of src with a separable running sum.
// src must have a zero origin.
func blurRGBA(src *image.RGBA, radius int) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	tmp := image.NewRGBA(src.Bounds())

	prefix := make([]int, max(w, h)+1)
	for c := 0; c < 4; c++ {
		for y := 0; y < h; y++ {
			row := y * src.Stride
			for x := 0; x < w; x++ {
				prefix[x+1] = prefix[x] + int(src.Pix[row+x*4+c])
			}
			for x := 0; x < w; x++ {
				x0 := max(x-radius, 0)
				x1 := min(x+radius, w-1)
				tmp.Pix[row+x*4+c] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
			}
		}
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x*4+c])
			}
			for y := 0; y < h; y++ {
				y0 := max(y-radius, 0)
				y1 := min(y+radius, h-1)
				dst.Pix[y*dst.Stride+x*4+c] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
			}
		}
	}
	return dst
}
