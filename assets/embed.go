package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Embedded themes and demo scenes for acrylic.
//
//go:embed themes/*.theme scenes/*.yaml
var embedded embed.FS

var (
	indexOnce sync.Once
	indexErr  error

	themes = map[string][]byte{}
	scenes = map[string][]byte{}
)

func loadIndex() {
	for dir, dst := range map[string]map[string][]byte{"themes": themes, "scenes": scenes} {
		entries, err := fs.ReadDir(embedded, dir)
		if err != nil {
			indexErr = err
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			data, err := embedded.ReadFile(path.Join(dir, name))
			if err != nil {
				indexErr = err
				return
			}
			dst[strings.TrimSuffix(name, path.Ext(name))] = data
		}
	}
}

func ensureIndex() error {
	indexOnce.Do(loadIndex)
	return indexErr
}

func lookup(kind string, set map[string][]byte, name string) ([]byte, error) {
	if err := ensureIndex(); err != nil {
		return nil, err
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	data, ok := set[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%s %q not embedded", kind, name)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func names(set map[string][]byte) []string {
	if err := ensureIndex(); err != nil {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Theme returns a copy of the embedded theme file called name. The
// ".theme" extension is optional.
func Theme(name string) ([]byte, error) {
	return lookup("theme", themes, name)
}

// ThemeNames lists the embedded themes.
func ThemeNames() []string {
	return names(themes)
}

// Scene returns a copy of the embedded scene file called name. The ".yaml"
// extension is optional.
func Scene(name string) ([]byte, error) {
	return lookup("scene", scenes, name)
}

// SceneNames lists the embedded scenes.
func SceneNames() []string {
	return names(scenes)
}
