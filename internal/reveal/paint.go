package reveal

import (
	"image"
	"image/color"
	"math"
)

// passState is everything a paint pass reads besides the target itself.
type passState struct {
	pointer  Point
	painted  Point
	hovering bool
	force    bool

	phase    Phase
	progress float64
	// subject is the ripple target after this frame advanced the phase.
	// previous is the subject before it, so a finished ripple gets one
	// last repaint that clears it.
	subject  *Target
	previous *Target
}

// paintTarget draws the reveal of one target for the current pass.
func paintTarget(t *Target, st *passState) {
	if st.pointer == st.painted && t != st.subject && t != st.previous && !st.force {
		return
	}
	s := t.surface
	if !s.Available() {
		return
	}
	s.Clear(image.Rect(0, 0, t.geom.Width, t.geom.Height))

	if !st.hovering {
		return
	}
	if t.cache.Len() < 2 {
		return
	}

	g := t.refresh()
	rel := st.pointer.Sub(g.Origin())
	if !rel.Finite() {
		return
	}

	style := t.style
	clip := clipRect(g, style)
	inside := g.ContainsRelative(rel)
	half := float64(g.CacheSize) / 2
	at := image.Pt(int(math.Round(rel.X-half)), int(math.Round(rel.Y-half)))

	if style.BorderStyle != BorderNone && (inside || style.BorderWhileNotHover) {
		s.PutImage(t.cache.Bitmap(LayerBorder), at, image.Rect(0, 0, g.Width, g.Height))
		s.Clear(clip)
	}

	if style.FillMode == FillNone || !inside {
		return
	}
	s.PutImage(t.cache.Bitmap(LayerFill), at, clip)

	if t != st.subject || st.progress == 0 {
		return
	}
	ripple := rippleGradient(st.phase, st.progress, g, rel, style.Color)
	if ripple.Empty() {
		return
	}
	s.FillGradient(rippleRect(clip), ripple)
}

// rippleRect grows the interior clip by half in each dimension so the
// ripple can run past the pressed target's interior.
func rippleRect(clip image.Rectangle) image.Rectangle {
	w := int(float64(clip.Dx()) * 1.5)
	h := int(float64(clip.Dy()) * 1.5)
	return image.Rect(clip.Min.X, clip.Min.Y, clip.Min.X+w, clip.Min.Y+h)
}

// rippleGradient builds the press ripple at progress p. rel is the pointer
// relative to the target origin.
func rippleGradient(ph Phase, p float64, g Geometry, rel Point, col color.RGBA) RadialGradient {
	inner := math.Max(0, 0.2-p*0.7*1.7)
	outer := math.Max(0, 0.1-p*0.05)
	edge := math.Min(1, 0.1+p*0.9)

	grad := RadialGradient{
		Focus:  rel,
		Center: rel,
		Radius: g.FillRadius,
		Stops: []GradientStop{
			{Offset: 0, Color: color.RGBA{A: 255}, Alpha: inner},
			{Offset: edge * 0.55, Color: col, Alpha: outer},
			{Offset: edge, Color: col, Alpha: 0},
		},
	}
	if r, ok := ph.(Releasing); ok {
		grad.Focus = r.ReleasePoint.Sub(g.Origin())
		grad.Radius = float64(g.CacheSize)
	}
	return grad
}
