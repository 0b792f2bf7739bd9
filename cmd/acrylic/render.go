package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/clipboard"
	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/scene"
)

type renderCmd struct {
	sceneFlags
	output string
	frames string
	step   float64
	until  float64
	copy   bool
	*root
	fs *flag.FlagSet
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *renderCmd) Program() string {
	return c.root.Program() + " render"
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := newFlagSet("render")
	c := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.sceneFlags.register(fs)
	fs.StringVar(&c.output, "o", "acrylic.png", "final frame PNG, relative to output_dir when configured")
	fs.StringVar(&c.frames, "frames", "", "directory to write every frame to")
	fs.Float64Var(&c.step, "step", scene.DefaultStep, "frame step in milliseconds")
	fs.Float64Var(&c.until, "until", 0, "last frame in milliseconds (default script end plus settle time)")
	fs.BoolVar(&c.copy, "copy", false, "also copy the final frame to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() != 0 || c.step < 0 || c.until < 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *renderCmd) outputPath() string {
	if c.config.OutputDir != "" && !filepath.IsAbs(c.output) {
		return filepath.Join(c.config.OutputDir, c.output)
	}
	return c.output
}

func (c *renderCmd) Run() error {
	ld, err := c.loadScene(c.sceneFlags)
	if err != nil {
		return err
	}
	q := &host.FrameQueue{}
	l, err := ld.build(q)
	if err != nil {
		return err
	}
	defer l.Close()

	opts := scene.PlayOptions{Until: c.until, Step: c.step}
	if c.frames != "" {
		if err := os.MkdirAll(c.frames, 0o755); err != nil {
			return fmt.Errorf("frames dir: %w", err)
		}
		n := 0
		opts.OnFrame = func(float64) error {
			path := filepath.Join(c.frames, fmt.Sprintf("%05d.png", n))
			n++
			return writePNG(path, l.Frame(ld.image()))
		}
	}
	last, err := scene.Play(l, host.NewDispatcher(l.Regions()...), q, opts)
	if err != nil {
		return err
	}
	log.Debug("scene played", "scene", ld.scene.Name, "frame", last)

	img := l.Frame(ld.image())
	out := c.outputPath()
	if err := writePNG(out, img); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, out)
	c.notifyRender(out, img)

	if c.copy {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.notifyCopy("render")
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
