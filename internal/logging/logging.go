// Package logging configures the charm logger shared by the commands and
// hands it to the reveal engine as its slog handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/acrylicreveal/internal/reveal"
)

// New returns a logger writing to w at level. An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := log.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "acrylic",
		Level:           lvl,
	}), nil
}

// Install makes l the package-level charm logger and routes the reveal
// engine's records through it.
func Install(l *log.Logger) {
	log.SetDefault(l)
	reveal.SetLogger(slog.New(l))
}
