// Package logging builds the slog logger the services share.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger on stdout. Level names are case-insensitive;
// anything unrecognised means info.
func New(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}
