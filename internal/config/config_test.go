package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/acrylicreveal/internal/reveal"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
scene = list
backdrop = "wallpaper.png"
fps = 30
log_level = debug
output_dir = /tmp/renders

[notify]
render = true
copy = false

[theme.my_custom_theme]
Background = #111111
Text: #FFFFFF
fill_radius = 2
Reveal.border_style: half
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Scene != "list" || cfg.Backdrop != "wallpaper.png" {
		t.Errorf("Unexpected scene/backdrop %q/%q", cfg.Scene, cfg.Backdrop)
	}
	if cfg.FPS != 30 || cfg.LogLevel != "debug" || cfg.OutputDir != "/tmp/renders" {
		t.Errorf("Unexpected root fields %+v", cfg)
	}
	if !cfg.Notify.Render {
		t.Error("Expected notify.render to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 255}) {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	s := th.Style(reveal.StyleOverride{}, reveal.StyleOverride{})
	if s.FillRadius != 2 || s.BorderStyle != reveal.BorderHalf {
		t.Errorf("Reveal keys not applied: %+v", s)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"fps = fast",
		"fps = -1",
		"[notify]\nrender = sometimes",
		"[theme.x]\nBackground = red",
		"[theme.x]\nfill_mode = sideways",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
scene = buttons
fps = 48

[notify]
render = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Text = #FFFFFF
color = 255, 0, 0
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme || cfg.Scene != cfg2.Scene || cfg.FPS != cfg2.FPS {
		t.Errorf("Root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background || t1.Text != t2.Text {
		t.Errorf("Theme colors mismatch: %v vs %v", t1, t2)
	}
	if t2.Reveal.Color == nil || *t2.Reveal.Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Reveal color lost: %+v", t2.Reveal)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "acrylic.rc")

	cfg := New()
	cfg.Theme = "dark"
	cfg.FPS = 24
	l := NewLoader("v1.0.0", path)
	written, err := l.Save(cfg, path)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if written != path {
		t.Fatalf("Save wrote %q, want %q", written, path)
	}
	if l.GetConfigPath() != path {
		t.Fatalf("override path not found: %q", l.GetConfigPath())
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != "dark" || loaded.FPS != 24 {
		t.Fatalf("unexpected config %+v", loaded)
	}
}

func TestLoaderDevLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := os.WriteFile(filepath.Join(dir, ".acrylicrc"), []byte("scene = panels\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("dev", "").Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "panels" {
		t.Fatalf("dev build should read .acrylicrc, got %+v", cfg)
	}

	cfg, err = NewLoader("v1.0.0", "").Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scene != "" {
		t.Fatalf("release build must ignore .acrylicrc, got %q", cfg.Scene)
	}
}
