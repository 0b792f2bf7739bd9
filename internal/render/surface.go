package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/example/acrylicreveal/internal/reveal"
)

// ImageSurface is a reveal.Surface backed by an in-memory RGBA buffer. Its
// position is expressed in host coordinates and only affects geometry
// queries; the buffer itself always starts at (0,0).
type ImageSurface struct {
	rect     image.Rectangle
	img      *image.RGBA
	detached bool
}

// NewImageSurface returns a surface laid out at r.
func NewImageSurface(r image.Rectangle) *ImageSurface {
	r = r.Canon()
	return &ImageSurface{
		rect: r,
		img:  image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy())),
	}
}

// BoundingRect reports the layout rectangle.
func (s *ImageSurface) BoundingRect() reveal.Rect {
	return reveal.RectFromImage(s.rect)
}

// Rect returns the layout rectangle in host coordinates.
func (s *ImageSurface) Rect() image.Rectangle { return s.rect }

// SetRect moves or resizes the surface. The buffer follows on the next
// paint, when the reveal engine notices the new size.
func (s *ImageSurface) SetRect(r image.Rectangle) {
	s.rect = r.Canon()
}

// Image returns the backing buffer.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Available reports whether the surface accepts drawing.
func (s *ImageSurface) Available() bool { return !s.detached }

// Detach makes the surface unavailable, as if its element left the tree.
func (s *ImageSurface) Detach() { s.detached = true }

// Attach reverses Detach.
func (s *ImageSurface) Attach() { s.detached = false }

// Resize reallocates the buffer when the size changes and clears it
// otherwise.
func (s *ImageSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if s.img.Bounds().Dx() == w && s.img.Bounds().Dy() == h {
		clear(s.img.Pix)
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Clear makes r transparent.
func (s *ImageSurface) Clear(r image.Rectangle) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(s.img, r, image.Transparent, image.Point{}, xdraw.Src)
}

// PutImage copies src with its origin at at, writing only inside clip.
func (s *ImageSurface) PutImage(src *image.RGBA, at image.Point, clip image.Rectangle) {
	if src == nil {
		return
	}
	r := src.Bounds().Sub(src.Bounds().Min).Add(at).Intersect(clip).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(s.img, r, src, src.Bounds().Min.Add(r.Min.Sub(at)), xdraw.Src)
}

// FillGradient composites g over r.
func (s *ImageSurface) FillGradient(r image.Rectangle, g reveal.RadialGradient) {
	g.Rasterize(s.img, r, true)
}
