// Package logging builds the slog loggers used by the commands
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogFileEnv names a file the live panel logs to
const LogFileEnv = "CC_SAKURA_LOG_FILE"

// New creates a text logger at warn level, or debug when verbose
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Open creates a logger appending to path. The returned function closes the
// file.
func Open(path string, verbose bool) (*slog.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, verbose), func() { f.Close() }, nil
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
