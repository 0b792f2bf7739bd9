package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/clipboard"
	"github.com/example/acrylicreveal/internal/scene"
	"github.com/example/acrylicreveal/internal/theme"
)

type scenesCmd struct {
	verbose bool
	copy    bool
	*root
	fs *flag.FlagSet
}

func (c *scenesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *scenesCmd) Program() string {
	return c.root.Program() + " scenes"
}

func parseScenesCmd(args []string, r *root) (*scenesCmd, error) {
	fs := newFlagSet("scenes")
	c := &scenesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.verbose, "v", false, "show size, boundaries, targets and script length")
	fs.BoolVar(&c.copy, "copy", false, "also copy the listing to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *scenesCmd) Run() error {
	var listing strings.Builder
	c.list(&listing)
	fmt.Fprint(c.stdout, listing.String())
	if !c.copy {
		return nil
	}
	if err := clipboard.WriteText(listing.String()); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.notifyCopy("scene list")
	return nil
}

func (c *scenesCmd) list(w io.Writer) {
	for _, name := range scene.Names() {
		if !c.verbose {
			fmt.Fprintln(w, name)
			continue
		}
		s, err := scene.Load(name)
		if err != nil {
			log.Warn("skipping scene", "scene", name, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s\t%dx%d\tboundaries=%d targets=%d\tscript=%gms\n",
			name, s.Size.W, s.Size.H, len(s.Boundaries), s.TargetCount(), s.Duration())
	}
}

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *themesCmd) Program() string {
	return c.root.Program() + " themes"
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := newFlagSet("themes")
	c := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *themesCmd) Run() error {
	l := theme.NewLoader()
	l.Extra = c.config.Themes
	for _, name := range l.Names() {
		fmt.Fprintln(c.stdout, name)
	}
	return nil
}
