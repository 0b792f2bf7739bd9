// Package notify announces finished renders and clipboard copies through the
// desktop notification center.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/platform"
)

// send delivers a notification; tests replace it.
var send = platform.Notify

// Event names a notification trigger.
type Event string

const (
	EventRender Event = "render"
	EventCopy   Event = "copy"
)

// EventPreference holds the body template of one event. %s receives the
// event detail.
type EventPreference struct {
	Template string
}

// Preferences are the notification texts.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// envKeys maps each event to the variable overriding its template.
var envKeys = map[Event]string{
	EventRender: "ACRYLIC_NOTIFY_RENDER_TEXT",
	EventCopy:   "ACRYLIC_NOTIFY_COPY_TEXT",
}

// DefaultPreferences returns the built-in texts.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventRender: {Template: "Rendered %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences applies ACRYLIC_NOTIFY_TITLE and the per-event text
// variables over the defaults.
func LoadPreferences() Preferences {
	p := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("ACRYLIC_NOTIFY_TITLE")); v != "" {
		p.Title = v
	}
	for ev, key := range envKeys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			p.Events[ev] = EventPreference{Template: v}
		}
	}
	return p
}

// Notifier sends the enabled events. All events start disabled. A nil
// Notifier is silent.
type Notifier struct {
	title     string
	templates map[Event]string
	enabled   map[Event]bool
}

// New copies prefs into a Notifier.
func New(prefs Preferences) *Notifier {
	n := &Notifier{
		title:     prefs.Title,
		templates: make(map[Event]string, len(prefs.Events)),
		enabled:   make(map[Event]bool),
	}
	for ev, p := range prefs.Events {
		n.templates[ev] = strings.TrimSpace(p.Template)
	}
	return n
}

// Enable switches one event on or off.
func (n *Notifier) Enable(event Event, on bool) {
	if n != nil {
		n.enabled[event] = on
	}
}

// Render announces a written render at path. The file itself is the icon
// when it exists; otherwise img is written to a temporary preview that is
// removed once the notification is handed off.
func (n *Notifier) Render(path string, img image.Image) {
	if !n.wants(EventRender) {
		return
	}
	detail := "scene"
	if strings.TrimSpace(path) != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		detail = path
	}
	icon, release := renderIcon(path, img)
	defer release()
	n.post(EventRender, detail, platform.Options{IconPath: icon})
}

// Copy announces a clipboard write of detail.
func (n *Notifier) Copy(detail string) {
	if !n.wants(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.post(EventCopy, detail, platform.Options{})
}

func (n *Notifier) wants(event Event) bool {
	return n != nil && n.enabled[event] && n.templates[event] != ""
}

func (n *Notifier) post(event Event, detail string, opts platform.Options) {
	body := strings.TrimSpace(fmt.Sprintf(n.templates[event], strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.title, body, opts); err != nil {
		log.Warn("notification failed", "event", event, "error", err)
	}
}

// renderIcon picks the notification icon for a render and returns a
// release func that removes any temporary file it made.
func renderIcon(path string, img image.Image) (string, func()) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, func() {}
		}
	}
	if img == nil {
		return "", func() {}
	}
	preview, err := writePreview(img)
	if err != nil {
		log.Warn("notification preview", "error", err)
		return "", func() {}
	}
	return preview, func() {
		if err := os.Remove(preview); err != nil && !os.IsNotExist(err) {
			log.Warn("remove preview", "error", err)
		}
	}
}

func writePreview(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "acrylic-preview-*.png")
	if err != nil {
		return "", err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
