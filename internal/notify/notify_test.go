package notify

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/acrylicreveal/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func captureSend(t *testing.T, err error) *[]sent {
	t.Helper()
	var got []sent
	prev := send
	send = func(title, body string, opts platform.Options) error {
		got = append(got, sent{title, body, opts})
		return err
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := captureSend(t, nil)
	n := New(DefaultPreferences())
	n.Copy("scene")
	n.Render("", nil)
	var nilNotifier *Notifier
	nilNotifier.Copy("x")
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestCopyFormatsTemplate(t *testing.T) {
	got := captureSend(t, nil)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("  ")
	n.Copy("buttons.png")
	if len(*got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(*got))
	}
	if (*got)[0].body != "Copied image to clipboard" {
		t.Errorf("unexpected body %q", (*got)[0].body)
	}
	if (*got)[1].body != "Copied buttons.png to clipboard" || (*got)[1].title != platform.AppName {
		t.Errorf("unexpected notification %+v", (*got)[1])
	}
}

func TestRenderUsesWrittenFileAsIcon(t *testing.T) {
	got := captureSend(t, errors.New("no bus"))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventRender, true)
	n.Render(path, nil)
	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(*got))
	}
	if (*got)[0].opts.IconPath != path || !strings.HasSuffix((*got)[0].body, "out.png") {
		t.Fatalf("unexpected notification %+v", (*got)[0])
	}
}

func TestRenderPreviewIsRemoved(t *testing.T) {
	got := captureSend(t, nil)
	n := New(DefaultPreferences())
	n.Enable(EventRender, true)
	n.Render("", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if len(*got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(*got))
	}
	icon := (*got)[0].opts.IconPath
	if icon == "" {
		t.Fatal("expected a preview icon")
	}
	if _, err := os.Stat(icon); !os.IsNotExist(err) {
		t.Fatalf("preview %s should be removed after dispatch: %v", icon, err)
	}
	if (*got)[0].body != "Rendered scene" {
		t.Errorf("unexpected body %q", (*got)[0].body)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("ACRYLIC_NOTIFY_TITLE", "Reveal")
	t.Setenv("ACRYLIC_NOTIFY_COPY_TEXT", "Clipboard: %s")
	prefs := LoadPreferences()
	if prefs.Title != "Reveal" || prefs.Events[EventCopy].Template != "Clipboard: %s" {
		t.Fatalf("env not applied: %+v", prefs)
	}
	if prefs.Events[EventRender].Template != "Rendered %s" {
		t.Fatalf("render template should keep default: %+v", prefs)
	}
}
