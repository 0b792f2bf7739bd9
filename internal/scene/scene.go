// Package scene describes reveal layouts in YAML and builds them into live
// boundaries and surfaces.
package scene

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/acrylicreveal/assets"
	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/reveal"
)

// Scene is a parsed scene document.
type Scene struct {
	Name       string     `yaml:"name"`
	Size       Size       `yaml:"size"`
	Theme      string     `yaml:"theme"`
	Backdrop   string     `yaml:"backdrop"`
	Style      Style      `yaml:"style"`
	Boundaries []Boundary `yaml:"boundaries"`
	// Targets outside any boundary. Building a scene that has them fails.
	Targets []Target `yaml:"targets"`
	Script  []Step   `yaml:"script"`
}

// Size is the host window size in pixels.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Point returns the size as an image.Point.
func (s Size) Point() image.Point { return image.Pt(s.W, s.H) }

// Boundary groups targets that share one pointer and ripple.
type Boundary struct {
	Name    string   `yaml:"name"`
	Rect    Rect     `yaml:"rect"`
	Style   Style    `yaml:"style"`
	Targets []Target `yaml:"targets"`
}

// Target is one revealed surface.
type Target struct {
	Label string `yaml:"label"`
	Rect  Rect   `yaml:"rect"`
	Style Style  `yaml:"style"`
	// Bounding, when set, is measured instead of Rect.
	Bounding *Rect `yaml:"bounding"`
}

// Step is one scripted pointer event. At is in milliseconds.
type Step struct {
	At    float64 `yaml:"at"`
	Event string  `yaml:"event"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Input converts the step for a host.Dispatcher.
func (s Step) Input() (host.Input, error) {
	kind, err := host.ParseInputKind(s.Event)
	if err != nil {
		return host.Input{}, err
	}
	return host.Input{Kind: kind, X: s.X, Y: s.Y}, nil
}

// Rect is written as [x, y, w, h].
type Rect image.Rectangle

// UnmarshalYAML reads the four element form.
func (r *Rect) UnmarshalYAML(n *yaml.Node) error {
	var v []int
	if err := n.Decode(&v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("line %d: rect needs [x, y, w, h], got %d values", n.Line, len(v))
	}
	if v[2] < 0 || v[3] < 0 {
		return fmt.Errorf("line %d: rect size must not be negative", n.Line)
	}
	*r = Rect(image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]))
	return nil
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle { return image.Rectangle(r) }

// Style is a reveal style override written as reveal option keys.
type Style struct {
	reveal.StyleOverride
}

// UnmarshalYAML applies each key with reveal.StyleOverride.SetOption.
func (s *Style) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: style must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if err := s.SetOption(key.Value, val.Value); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return nil
}

// Parse decodes a scene document and checks it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Script, func(i, j int) bool { return s.Script[i].At < s.Script[j].At })
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Size.W <= 0 || s.Size.H <= 0 {
		return fmt.Errorf("scene %q: size must be positive", s.Name)
	}
	for i, st := range s.Script {
		if _, err := host.ParseInputKind(st.Event); err != nil {
			return fmt.Errorf("scene %q: script[%d]: %w", s.Name, i, err)
		}
		if st.At < 0 {
			return fmt.Errorf("scene %q: script[%d]: negative time", s.Name, i)
		}
	}
	return nil
}

// Load reads name as a file path, falling back to the embedded scenes.
func Load(name string) (*Scene, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		embedded, embErr := assets.Scene(name)
		if embErr != nil {
			return nil, fmt.Errorf("scene %q: not a file and %w", name, embErr)
		}
		data = embedded
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// DefaultName is the embedded scene used when none is configured.
const DefaultName = "buttons"

// Names lists the embedded scenes.
func Names() []string {
	return assets.SceneNames()
}

// Duration is the time of the last scripted event.
func (s *Scene) Duration() float64 {
	if len(s.Script) == 0 {
		return 0
	}
	return s.Script[len(s.Script)-1].At
}

// TargetCount counts targets inside boundaries.
func (s *Scene) TargetCount() int {
	n := 0
	for _, b := range s.Boundaries {
		n += len(b.Targets)
	}
	return n
}
