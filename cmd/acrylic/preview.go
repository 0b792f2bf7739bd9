package main

import (
	"flag"

	"github.com/example/acrylicreveal/internal/appstate"
)

type previewCmd struct {
	sceneFlags
	fps     int
	acrylic bool
	output  string
	*root
	fs *flag.FlagSet
}

func (p *previewCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func (p *previewCmd) Program() string {
	return p.root.Program() + " preview"
}

func parsePreviewCmd(args []string, r *root) (*previewCmd, error) {
	fs := newFlagSet("preview")
	c := &previewCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.sceneFlags.register(fs)
	fs.IntVar(&c.fps, "fps", 0, "animation frame rate (default from config, else 60)")
	fs.BoolVar(&c.acrylic, "acrylic", false, "start with the frosted backdrop")
	fs.StringVar(&c.output, "output", "acrylic.png", "file written by Ctrl+S")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (p *previewCmd) Run() error {
	ld, err := p.loadScene(p.sceneFlags)
	if err != nil {
		return err
	}
	fps := p.fps
	if fps <= 0 {
		fps = p.config.FPS
	}
	st := appstate.New(
		appstate.WithBackdrop(ld.backdrop),
		appstate.WithAcrylic(p.acrylic),
		appstate.WithFPS(fps),
		appstate.WithOutput(p.output),
	)
	l, err := ld.build(st.Scheduler())
	if err != nil {
		st.Close()
		return err
	}
	defer l.Close()
	st.Run(l)
	return nil
}
