package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OpenLogger returns a text logger writing to the resolved log file, since
// the TUI owns the terminal. The returned closer closes the file.
func (c Config) OpenLogger() (*slog.Logger, io.Closer, error) {
	path, err := c.ResolveLogFile()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewLogger(f, c.LogLevel), f, nil
}

// NewLogger returns a text logger at level writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
