// Package logs sets up the process logger: text on stderr plus a ring of
// recent lines for the debug overlay.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

// SetLevel parses debug, info, warn or error.
func SetLevel(name string) error {
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("logs: level %q: %w", name, err)
	}
	return nil
}

// Level returns the current minimum level.
func Level() slog.Level {
	return level.Level()
}

// New builds a logger writing text to w and, when ring is non-nil, keeping
// recent records in ring.
func New(w io.Writer, ring *Ring) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
	}
	if ring != nil {
		handlers = append(handlers, ring)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
