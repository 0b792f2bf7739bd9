package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ACRYLIC_THEME", "")
	t.Setenv("ACRYLIC_SCENE", "")
	r := newRoot()
	var out bytes.Buffer
	r.stdout = &out
	return r, &out
}

func TestUnknownCommand(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{"paint"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "Commands:") {
		t.Fatalf("root help not rendered:\n%s", uerr.Error())
	}
}

func TestVersion(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.HasPrefix(got, "acrylic "+version) {
		t.Fatalf("version output = %q", got)
	}
}

func TestRenderWritesFrames(t *testing.T) {
	r, out := testRoot(t)
	dir := t.TempDir()
	final := filepath.Join(dir, "final.png")
	frames := filepath.Join(dir, "frames")
	err := r.Run([]string{"render", "-scene", "buttons", "-backdrop", "none",
		"-o", final, "-frames", frames, "-step", "16", "-until", "160"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out.String()) != final {
		t.Fatalf("render printed %q, want %q", out.String(), final)
	}
	if _, err := os.Stat(final); err != nil {
		t.Fatalf("final frame missing: %v", err)
	}
	entries, err := os.ReadDir(frames)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 11 {
		t.Fatalf("wrote %d frames, want 11", len(entries))
	}
	if entries[0].Name() != "00000.png" {
		t.Fatalf("first frame named %q", entries[0].Name())
	}
}

func TestRenderUsesOutputDir(t *testing.T) {
	r, out := testRoot(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "acrylic.rc")
	if err := os.WriteFile(cfgPath, []byte("output_dir = "+dir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := r.Run([]string{"-config", cfgPath, "render", "-backdrop", "none", "-until", "32", "-o", "shot.png"})
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "shot.png")
	if strings.TrimSpace(out.String()) != want {
		t.Fatalf("render printed %q, want %q", out.String(), want)
	}
}

func TestScenesList(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"scenes", "-v"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"buttons", "list", "panels"} {
		if !strings.Contains(out.String(), name+"\t") {
			t.Errorf("scenes output missing %s:\n%s", name, out.String())
		}
	}
}

func TestScenesCopyWithoutDisplay(t *testing.T) {
	r, out := testRoot(t)
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	err := r.Run([]string{"scenes", "-copy"})
	if err == nil || !strings.Contains(err.Error(), "copy to clipboard") {
		t.Fatalf("expected a clipboard error, got %v", err)
	}
	if !strings.Contains(out.String(), "buttons\n") {
		t.Fatalf("listing should still be printed, got %q", out.String())
	}
}

func TestThemesList(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"themes"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "dark") || !strings.Contains(out.String(), "default") {
		t.Fatalf("themes output = %q", out.String())
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"-theme", "dark", "config", "print"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[notify]") {
		t.Fatalf("config print = %q", out.String())
	}

	r, out = testRoot(t)
	path := filepath.Join(t.TempDir(), "saved.rc")
	if err := r.Run([]string{"config", "save", path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("config save output = %q", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	r, _ = testRoot(t)
	var uerr *UsageError
	if err := r.Run([]string{"config", "load"}); !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestHelpTemplates(t *testing.T) {
	r, _ := testRoot(t)
	cmds := []HelpData{r, &versionCmd{r: r}}
	if c, err := parsePreviewCmd(nil, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	if c, err := parseTUICmd(nil, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	if c, err := parseRenderCmd(nil, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	if c, err := parseScenesCmd(nil, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	if c, err := parseThemesCmd(nil, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	if c, err := parseConfigCmd([]string{"print"}, r); err == nil {
		cmds = append(cmds, c)
	} else {
		t.Fatal(err)
	}
	for _, c := range cmds {
		help, err := (&UsageError{of: c}).renderHelp()
		if err != nil {
			t.Fatalf("%s: %v", c.Template(), err)
		}
		if !strings.Contains(help, "Usage: "+c.Program()) {
			t.Errorf("%s: unexpected help:\n%s", c.Template(), help)
		}
	}
}

func TestSceneNamePrecedence(t *testing.T) {
	r, _ := testRoot(t)
	if got := r.sceneName(""); got != "buttons" {
		t.Fatalf("default scene = %q", got)
	}
	r.config.Scene = "list"
	if got := r.sceneName(""); got != "list" {
		t.Fatalf("config scene = %q", got)
	}
	t.Setenv("ACRYLIC_SCENE", "panels")
	if got := r.sceneName(""); got != "panels" {
		t.Fatalf("env scene = %q", got)
	}
	if got := r.sceneName("buttons"); got != "buttons" {
		t.Fatalf("flag scene = %q", got)
	}
}
