package reveal

// Target is one registered drawing surface. It is owned by exactly one
// Boundary and only that boundary's paint pass touches it.
type Target struct {
	surface  Surface
	bounding Element
	style    Style

	// geom is the snapshot the cache was built for.
	geom  Geometry
	cache BitmapCache
}

// TargetOption configures a Target at registration.
type TargetOption func(*Target)

// WithBoundingElement measures el instead of the surface itself.
func WithBoundingElement(el Element) TargetOption {
	return func(t *Target) { t.bounding = el }
}

func newTarget(s Surface, style Style, opts ...TargetOption) *Target {
	t := &Target{surface: s, style: style}
	for _, o := range opts {
		o(t)
	}
	t.cacheBitmaps()
	return t
}

// Surface returns the surface the target paints into.
func (t *Target) Surface() Surface { return t.surface }

// Style returns the resolved style.
func (t *Target) Style() Style { return t.style }

// SetStyle replaces the style and rebuilds the bitmap cache.
func (t *Target) SetStyle(s Style) {
	t.style = s
	t.cacheBitmaps()
}

// Cache exposes the cached bitmaps.
func (t *Target) Cache() *BitmapCache { return &t.cache }

// Cached returns the geometry the current cache was built for.
func (t *Target) Cached() Geometry { return t.geom }

// Geometry measures the target now.
func (t *Target) Geometry() Geometry {
	return measure(t.element().BoundingRect(), t.style)
}

// Contains reports whether p, in host coordinates, is over the target.
func (t *Target) Contains(p Point) bool {
	return t.Geometry().Contains(p)
}

func (t *Target) element() Element {
	if t.bounding != nil {
		return t.bounding
	}
	return t.surface
}

// cacheBitmaps resizes the surface to the measured size and renders both
// gradient layers. Unavailable surfaces keep an empty cache.
func (t *Target) cacheBitmaps() {
	if !t.surface.Available() {
		return
	}
	g := t.Geometry()
	t.geom = g
	t.surface.Resize(g.Width, g.Height)
	t.cache.build(g, t.style.Color)
	Logger().Debug("reveal cache built",
		"width", g.Width, "height", g.Height, "cache", g.CacheSize)
}

// refresh rebuilds the cache when the measured size no longer matches and
// returns the fresh geometry.
func (t *Target) refresh() Geometry {
	g := t.Geometry()
	if g.Width != t.geom.Width || g.Height != t.geom.Height {
		t.cacheBitmaps()
	}
	return g
}
