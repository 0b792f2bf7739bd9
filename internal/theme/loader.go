package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/acrylicreveal/assets"
)

// Loader handles loading themes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Extra holds themes defined inline, such as [theme.<name>] sections of
	// the configuration file. They win over every other source.
	Extra map[string]*Theme
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "acrylic", "themes"),
		SystemDir: "/usr/share/acrylic/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. Inline themes from Extra.
// 2. If it's a file path that exists, load it.
// 3. Check embedded themes.
// 4. Check ConfigDir.
// 5. Check SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}

	// 1. Inline
	if t, ok := l.Extra[name]; ok {
		cp := *t
		return &cp, nil
	}

	// 2. File path
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return parseFile(name)
	}

	// Normalize name (ensure .theme extension for lookup if missing)
	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	// 3. Embedded
	if data, err := assets.Theme(filename); err == nil {
		return Parse(bytes.NewReader(data))
	}

	// 4. Config Dir
	configPath := filepath.Join(l.ConfigDir, filename)
	if _, err := os.Stat(configPath); err == nil {
		return parseFile(configPath)
	}

	// 5. System Dir
	systemPath := filepath.Join(l.SystemDir, filename)
	if _, err := os.Stat(systemPath); err == nil {
		return parseFile(systemPath)
	}

	return nil, fmt.Errorf("theme '%s' not found", name)
}

// Names lists every theme the loader can find by name.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	for name := range l.Extra {
		seen[name] = true
	}
	for _, name := range assets.ThemeNames() {
		seen[name] = true
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		matches, _ := filepath.Glob(filepath.Join(dir, "*.theme"))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".theme")] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}
