// Package logging configures slog for the bot. Stdout carries the engine
// protocol, so console output always goes to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel converts a level name to slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}
}

// New builds a logger writing text records to console and, when non-nil,
// to file.
func New(console, file io.Writer, level string) *slog.Logger {
	opts := handlerOptions(ParseLevel(level))
	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(console, opts))
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, opts))
	}
	return slog.New(NewMultiHandler(handlers...))
}

// Setup installs the default logger on stderr plus the optional log file at
// path. The returned close function releases the file.
func Setup(level, path string) (func() error, error) {
	closeFn := func() error { return nil }
	var file io.Writer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		file = f
		closeFn = f.Close
	}
	slog.SetDefault(New(os.Stderr, file, level))
	slog.Info("logging initialized", "level", ParseLevel(level).String(), "file", path)
	return closeFn, nil
}
