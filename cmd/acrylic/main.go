package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/config"
	"github.com/example/acrylicreveal/internal/logging"
	"github.com/example/acrylicreveal/internal/notify"
	"github.com/example/acrylicreveal/internal/scene"
	"github.com/example/acrylicreveal/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	stdout      io.Writer
	notifier    *notify.Notifier
	config      *config.Config
	configPath  string
	renderAlert bool
	copyAlert   bool
	themeName   string
	logLevel    string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:       flag.NewFlagSet("acrylic", flag.ContinueOnError),
		program:  "acrylic",
		stdout:   os.Stdout,
		notifier: notify.New(notify.LoadPreferences()),
		config:   config.New(),
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "configuration file to read")
	r.fs.BoolVar(&r.renderAlert, "notify-render", false, "show a desktop notification after writing a render")
	r.fs.BoolVar(&r.copyAlert, "notify-copy", false, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default
	// Empty defaults are resolved in Run once the configuration is loaded.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, a file path or a [theme.<name>] section)")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level: debug, info, warn or error")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) loadConfig() {
	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		log.Warn("failed to load config", "error", err)
		cfg = config.New()
	}
	r.config = cfg
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r}
		}
		return err
	}
	r.loadConfig()
	if err := r.setupLogging(); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	set := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["notify-render"] {
		r.renderAlert = r.config.Notify.Render
	}
	if !set["notify-copy"] {
		r.copyAlert = r.config.Notify.Copy
	}
	r.notifier.Enable(notify.EventRender, r.renderAlert)
	r.notifier.Enable(notify.EventCopy, r.copyAlert)

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "preview":
		cmd, err = parsePreviewCmd(subArgs, r)
	case "tui":
		cmd, err = parseTUICmd(subArgs, r)
	case "render":
		cmd, err = parseRenderCmd(subArgs, r)
	case "scenes":
		cmd, err = parseScenesCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) setupLogging() error {
	level := r.logLevel
	if level == "" {
		level = r.config.LogLevel
	}
	l, err := logging.New(os.Stderr, level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logging.Install(l)
	return nil
}

// themeFor resolves the active theme. fallback is the scene's own choice,
// used when neither the flag, ACRYLIC_THEME nor the config names one.
func (r *root) themeFor(fallback string) *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("ACRYLIC_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	if name == "" {
		name = fallback
	}
	loader := theme.NewLoader()
	loader.Extra = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		if name != "default" {
			log.Warn("failed to load theme, using default", "theme", name, "error", err)
		}
		return theme.Default()
	}
	return t
}

// sceneName applies the flag > ACRYLIC_SCENE > config precedence.
func (r *root) sceneName(flagValue string) string {
	for _, v := range []string{flagValue, os.Getenv("ACRYLIC_SCENE"), r.config.Scene} {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return scene.DefaultName
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		log.Error(err)
		os.Exit(1)
	}
}

func (r *root) notifyRender(path string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Render(path, img)
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}
