package reveal

import (
	"image"
	"image/color"
)

// Layer identifies one of the two cached bitmaps.
type Layer int

const (
	// LayerBorder is stamped along the target's edges.
	LayerBorder Layer = iota
	// LayerFill is stamped inside the interior clip rectangle.
	LayerFill
)

const (
	borderAlpha = 0.6
	fillAlpha   = 0.3
)

// BitmapCache holds the pre-rendered gradients of one target.
type BitmapCache struct {
	bitmaps []*image.RGBA
	size    int
}

// Len returns how many layers are cached. A complete cache has two.
func (c *BitmapCache) Len() int {
	return len(c.bitmaps)
}

// Size returns the side length of the cached bitmaps.
func (c *BitmapCache) Size() int {
	return c.size
}

// Bitmap returns the bitmap of layer l, or nil when it is not cached.
func (c *BitmapCache) Bitmap(l Layer) *image.RGBA {
	if int(l) >= len(c.bitmaps) {
		return nil
	}
	return c.bitmaps[l]
}

func (c *BitmapCache) reset() {
	c.bitmaps = c.bitmaps[:0]
	c.size = 0
}

// build renders both layers for geometry g in color col.
func (c *BitmapCache) build(g Geometry, col color.RGBA) {
	c.reset()
	c.size = g.CacheSize
	for _, l := range []Layer{LayerBorder, LayerFill} {
		c.bitmaps = append(c.bitmaps, layerBitmap(l, g, col))
	}
}

// layerBitmap renders one radial gradient centred in a CacheSize square.
func layerBitmap(l Layer, g Geometry, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.CacheSize, g.CacheSize))
	radius, alpha := g.BorderRadius, borderAlpha
	if l == LayerFill {
		radius, alpha = g.FillRadius, fillAlpha
	}
	mid := float64(g.CacheSize) / 2
	grad := RadialGradient{
		Focus:  Point{X: mid, Y: mid},
		Center: Point{X: mid, Y: mid},
		Radius: radius,
		Stops: []GradientStop{
			{Offset: 0, Color: col, Alpha: alpha},
			{Offset: 1, Color: col, Alpha: 0},
		},
	}
	grad.Rasterize(img, img.Bounds(), false)
	return img
}
