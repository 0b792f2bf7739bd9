package reveal

import "errors"

var (
	// ErrNoBoundary is returned when a target is registered without an
	// enclosing boundary.
	ErrNoBoundary = errors.New("reveal: must be used within a boundary")
	// ErrNilSurface is returned when AddReveal is given no surface.
	ErrNilSurface = errors.New("reveal: surface is nil")
	// ErrUnknownOption reports a style key SetOption does not recognise.
	ErrUnknownOption = errors.New("reveal: unknown style option")
)
