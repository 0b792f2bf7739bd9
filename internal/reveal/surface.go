package reveal

import "image"

// Element answers geometry queries for anything laid out in host
// coordinates.
type Element interface {
	BoundingRect() Rect
}

// Surface is the drawing target of one reveal. Coordinates passed to the
// drawing methods are relative to the surface's own top-left corner.
type Surface interface {
	Element
	// Available reports whether the surface currently has a backing store.
	// Detached surfaces report false and are skipped.
	Available() bool
	// Resize sets the backing pixel size.
	Resize(width, height int)
	// Clear makes r fully transparent.
	Clear(r image.Rectangle)
	// PutImage copies src so that its origin lands at at. Only pixels inside
	// clip are written and no blending takes place.
	PutImage(src *image.RGBA, at image.Point, clip image.Rectangle)
	// FillGradient composites g over r.
	FillGradient(r image.Rectangle, g RadialGradient)
}

// FrameHandle cancels a pending frame request.
type FrameHandle interface {
	Cancel()
}

// Scheduler is the host's animation-frame source. Callbacks must run on the
// same goroutine that delivers pointer events; frame is a monotonically
// increasing clock value in milliseconds. RequestFrame must return before fn
// runs.
type Scheduler interface {
	RequestFrame(fn func(frame float64)) FrameHandle
}
