package main

import (
	"flag"
	"fmt"

	"github.com/example/acrylicreveal/internal/config"
)

type configCmd struct {
	action string
	path   string
	*root
	fs *flag.FlagSet
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Program() string {
	return c.root.Program() + " config"
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := newFlagSet("config")
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	switch {
	case fs.NArg() == 1 && fs.Arg(0) == "print":
	case fs.NArg() >= 1 && fs.NArg() <= 2 && fs.Arg(0) == "save":
		c.path = fs.Arg(1)
	default:
		return nil, &UsageError{of: c}
	}
	c.action = fs.Arg(0)
	return c, nil
}

func (c *configCmd) Run() error {
	if c.action == "print" {
		fmt.Fprint(c.stdout, c.config.String())
		return nil
	}
	path, err := config.NewLoader(version, c.configPath).Save(c.config, c.path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(c.stdout, "wrote %s\n", path)
	return nil
}
