package scene

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/render"
	"github.com/example/acrylicreveal/internal/reveal"
	"github.com/example/acrylicreveal/internal/theme"
)

// Layout is a built scene: live boundaries with one surface per target.
type Layout struct {
	Scene      *Scene
	Theme      *theme.Theme
	Boundaries []*BoundaryLayout
	Targets    []*TargetLayout

	manager *reveal.Manager
}

// BoundaryLayout is a built boundary and the host rectangle it covers.
type BoundaryLayout struct {
	Name     string
	Rect     image.Rectangle
	Boundary *reveal.Boundary
	Targets  []*TargetLayout
}

// TargetLayout is a registered target and the surface it paints into.
type TargetLayout struct {
	Label    string
	Surface  *render.ImageSurface
	Target   *reveal.Target
	Boundary *reveal.Boundary
}

// Rect is where the target's plate sits in host coordinates.
func (t *TargetLayout) Rect() image.Rectangle { return t.Surface.Rect() }

// Hovered reports whether the boundary's pointer is over this target.
func (t *TargetLayout) Hovered() bool {
	return t.Boundary.Hovering() && t.Boundary.HoveringTarget() == t.Target
}

type rectElement image.Rectangle

func (r rectElement) BoundingRect() reveal.Rect {
	return reveal.RectFromImage(image.Rectangle(r))
}

// Build creates the scene's boundaries on m and registers every target. A
// nil theme uses theme.Default. Style layers, lowest first: the theme's
// reveal options, the scene and boundary styles merged, the target style.
func Build(s *Scene, m *reveal.Manager, th *theme.Theme) (*Layout, error) {
	if th == nil {
		th = theme.Default()
	}
	l := &Layout{Scene: s, Theme: th, manager: m}
	for _, t := range s.Targets {
		var orphan *reveal.Boundary
		if _, err := orphan.AddReveal(render.NewImageSurface(t.Rect.Image()), th.Style(s.Style.StyleOverride, t.Style.StyleOverride)); err != nil {
			return nil, fmt.Errorf("scene %q: target %q: %w", s.Name, t.Label, err)
		}
	}
	for _, sb := range s.Boundaries {
		bl := &BoundaryLayout{
			Name:     sb.Name,
			Rect:     sb.Rect.Image(),
			Boundary: m.CreateBoundary(),
		}
		if bl.Rect.Empty() {
			bl.Rect = image.Rect(0, 0, s.Size.W, s.Size.H)
		}
		l.Boundaries = append(l.Boundaries, bl)
		component := s.Style.Merge(sb.Style.StyleOverride)
		for _, st := range sb.Targets {
			surface := render.NewImageSurface(st.Rect.Image())
			var opts []reveal.TargetOption
			if st.Bounding != nil {
				opts = append(opts, reveal.WithBoundingElement(rectElement(st.Bounding.Image())))
			}
			target, err := bl.Boundary.AddReveal(surface, th.Style(component, st.Style.StyleOverride), opts...)
			if err != nil {
				l.Close()
				return nil, fmt.Errorf("scene %q: target %q: %w", s.Name, st.Label, err)
			}
			tl := &TargetLayout{Label: st.Label, Surface: surface, Target: target, Boundary: bl.Boundary}
			bl.Targets = append(bl.Targets, tl)
			l.Targets = append(l.Targets, tl)
		}
	}
	log.Debug("scene built", "scene", s.Name, "boundaries", len(l.Boundaries), "targets", len(l.Targets))
	return l, nil
}

// Size is the host window size.
func (l *Layout) Size() image.Point { return l.Scene.Size.Point() }

// Regions returns the hit-test regions for a host.Dispatcher.
func (l *Layout) Regions() []host.Region {
	out := make([]host.Region, 0, len(l.Boundaries))
	for _, b := range l.Boundaries {
		out = append(out, host.Region{Rect: b.Rect, Boundary: b.Boundary})
	}
	return out
}

// Surfaces returns the target surfaces in paint order.
func (l *Layout) Surfaces() []*render.ImageSurface {
	out := make([]*render.ImageSurface, 0, len(l.Targets))
	for _, t := range l.Targets {
		out = append(out, t.Surface)
	}
	return out
}

// Plates returns the target bodies, highlighted when hovered.
func (l *Layout) Plates() []render.Plate {
	out := make([]render.Plate, 0, len(l.Targets))
	for _, t := range l.Targets {
		fill := l.Theme.Surface
		if t.Hovered() {
			fill = l.Theme.SurfaceHover
		}
		out = append(out, render.Plate{Rect: t.Rect(), Fill: fill, Label: t.Label, Text: l.Theme.Text})
	}
	return out
}

// Draw renders the whole scene into dst: backdrop (or the theme
// background when nil), plates, then reveal surfaces.
func (l *Layout) Draw(dst *image.RGBA, backdrop image.Image) {
	if backdrop != nil {
		render.DrawBackdrop(dst, backdrop)
	} else {
		render.Fill(dst, l.Theme.Background)
	}
	render.DrawPlates(dst, l.Plates())
	render.Composite(dst, l.Surfaces())
}

// Frame allocates a scene-sized image and draws into it.
func (l *Layout) Frame(backdrop image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: l.Size()})
	l.Draw(dst, backdrop)
	return dst
}

// TakeDirty reports and clears whether any boundary painted since the last
// call.
func (l *Layout) TakeDirty() bool {
	dirty := false
	for _, b := range l.Boundaries {
		if b.Boundary.TakeDirty() {
			dirty = true
		}
	}
	return dirty
}

// ResetAll repaints every boundary from its current state.
func (l *Layout) ResetAll() {
	for _, b := range l.Boundaries {
		b.Boundary.ResetAll()
	}
}

// Close destroys the boundaries. It is safe to call more than once.
func (l *Layout) Close() {
	for _, b := range l.Boundaries {
		l.manager.Destroy(b.Boundary)
	}
}
