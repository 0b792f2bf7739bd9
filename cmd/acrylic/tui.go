package main

import (
	"flag"

	"github.com/example/acrylicreveal/internal/tui"
)

type tuiCmd struct {
	sceneFlags
	fps     int
	acrylic bool
	*root
	fs *flag.FlagSet
}

func (t *tuiCmd) FlagSet() *flag.FlagSet {
	return t.fs
}

func (t *tuiCmd) Program() string {
	return t.root.Program() + " tui"
}

func parseTUICmd(args []string, r *root) (*tuiCmd, error) {
	fs := newFlagSet("tui")
	c := &tuiCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.sceneFlags.register(fs)
	fs.IntVar(&c.fps, "fps", 0, "animation frame rate (default from config, else 60)")
	fs.BoolVar(&c.acrylic, "acrylic", false, "start with the frosted backdrop")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (t *tuiCmd) Run() error {
	ld, err := t.loadScene(t.sceneFlags)
	if err != nil {
		return err
	}
	fps := t.fps
	if fps <= 0 {
		fps = t.config.FPS
	}
	h := tui.New(fps)
	h.Acrylic = t.acrylic
	if ld.backdrop != nil {
		h.Backdrop = ld.backdrop
	}
	l, err := ld.build(h.Scheduler())
	if err != nil {
		h.Close()
		return err
	}
	defer l.Close()
	return h.Run(l)
}
