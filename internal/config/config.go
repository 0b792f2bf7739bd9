package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/acrylicreveal/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Render bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	Scene     string
	Backdrop  string
	FPS       int
	LogLevel  string
	OutputDir string
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Render: false,
			Copy:   false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	root := [][2]string{
		{"theme", c.Theme},
		{"scene", c.Scene},
		{"backdrop", c.Backdrop},
		{"log_level", c.LogLevel},
		{"output_dir", c.OutputDir},
	}
	for _, kv := range root {
		if kv[1] != "" {
			fmt.Fprintf(&sb, "%s = %s\n", kv[0], kv[1])
		}
	}
	if c.FPS > 0 {
		fmt.Fprintf(&sb, "fps = %d\n", c.FPS)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "render = %v\n", c.Notify.Render)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		for _, kv := range theme.Fields(c.Themes[name]) {
			fmt.Fprintf(&sb, "%s: %s\n", kv[0], kv[1])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
