package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/backdrop"
	"github.com/example/acrylicreveal/internal/reveal"
	"github.com/example/acrylicreveal/internal/scene"
	"github.com/example/acrylicreveal/internal/theme"
)

// sceneFlags are shared by the commands that show a scene.
type sceneFlags struct {
	scene    string
	backdrop string
}

func (f *sceneFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.scene, "scene", "", "scene name or YAML path (default buttons)")
	fs.StringVar(&f.backdrop, "backdrop", "", "backdrop: none, desktop, x11 or an image path (default from scene)")
}

// loaded is a scene ready to be shown.
type loaded struct {
	scene    *scene.Scene
	theme    *theme.Theme
	backdrop *image.RGBA
}

func (r *root) loadScene(f sceneFlags) (*loaded, error) {
	s, err := scene.Load(r.sceneName(f.scene))
	if err != nil {
		return nil, err
	}
	out := &loaded{scene: s, theme: r.themeFor(s.Theme)}

	spec := f.backdrop
	if spec == "" {
		spec = r.config.Backdrop
	}
	if spec == "" {
		spec = s.Backdrop
	}
	bd, err := backdrop.Load(spec, s.Size.Point())
	if err != nil {
		log.Warn("backdrop unavailable, using theme background", "error", err)
	}
	out.backdrop = bd
	return out, nil
}

func (ld *loaded) build(sched reveal.Scheduler) (*scene.Layout, error) {
	l, err := scene.Build(ld.scene, reveal.NewManager(reveal.WithScheduler(sched)), ld.theme)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	return l, nil
}

// image returns the backdrop as an interface that is nil when no backdrop
// was loaded.
func (ld *loaded) image() image.Image {
	if ld.backdrop == nil {
		return nil
	}
	return ld.backdrop
}
