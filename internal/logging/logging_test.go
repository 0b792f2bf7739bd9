package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/reveal"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "acrylic") {
		t.Fatalf("missing prefix in %q", out)
	}

	if _, err := New(&buf, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInstallRoutesReveal(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() {
		log.SetDefault(prev)
		reveal.SetLogger(nil)
	})

	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	if err != nil {
		t.Fatal(err)
	}
	Install(l)
	reveal.NewManager().CreateBoundary()
	if !strings.Contains(buf.String(), "reveal boundary created") {
		t.Fatalf("reveal record not routed: %q", buf.String())
	}
}
