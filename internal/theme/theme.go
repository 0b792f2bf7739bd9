package theme

import (
	"image/color"

	"github.com/example/acrylicreveal/internal/reveal"
)

// Theme defines the palette of a scene and the global reveal style layer.
type Theme struct {
	Name string

	Background   color.RGBA // Window background behind the backdrop
	Surface      color.RGBA // Target plate
	SurfaceHover color.RGBA // Target plate under the pointer
	Text         color.RGBA // Target labels

	// Reveal is the global layer of reveal style resolution.
	Reveal reveal.StyleOverride
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:         "default",
		Background:   color.RGBA{230, 230, 230, 255},
		Surface:      color.RGBA{245, 245, 245, 255},
		SurfaceHover: color.RGBA{255, 255, 255, 255},
		Text:         color.RGBA{30, 30, 30, 255},
	}
}

// Style resolves the reveal style for a component and a local override on
// top of this theme.
func (t *Theme) Style(component, local reveal.StyleOverride) reveal.Style {
	var global reveal.StyleOverride
	if t != nil {
		global = t.Reveal
	}
	return reveal.Resolve(reveal.DefaultStyle(), global, component, local)
}
