// Package logging wraps log/slog with the LOG_LEVEL vocabulary spec.md §6
// uses (DEBUG/INFO/WARNING/ERROR/CRITICAL). No structured-logging dependency
// in the retrieved example pack fits a batch CLI (the one logging import
// found, tliron/commonlog, is LSP-transport-specific), and the closest
// teacher-adjacent CLI (transitorykris-kbgp/cmd/main.go) itself reaches for
// a standard logger, so this package stays on the standard library.
package logging

import (
	"log/slog"
	"os"
)

// New builds a text-handler *slog.Logger writing to stderr at the level
// named by levelName. An unrecognized name falls back to INFO.
func New(levelName string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level(levelName)})

	return slog.New(handler)
}

// level maps spec.md's LOG_LEVEL vocabulary onto slog.Level. CRITICAL has no
// direct slog equivalent; it is mapped above Error so it always surfaces.
func level(name string) slog.Level {
	switch name {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "CRITICAL":
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
