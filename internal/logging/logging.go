// Package logging bootstraps the structured loggers used by reportdemo: a
// JSON logger feeding the projection sink and a text logger for human-facing
// process output. Every logger built here carries module, version and a
// per-process instance id so interleaved runs writing to one sink file stay
// distinguishable.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// instance is generated once per process and stamped on every logger.
var instance = uuid.NewString()

// Instance returns the per-process logger id.
func Instance() string { return instance }

// Options describe one logger target.
type Options struct {
	Level  string // debug|info|warn|error, case-insensitive; default info
	Format string // json|text; default text
	Output string // "stderr", "stdout", or a file path; default stderr
}

// ParseLevel maps a configured level string onto a slog.Level. Empty and
// unknown strings map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger for the given target, pre-seeded with module, version
// and instance attributes. The returned close function releases the file
// handle when Output named a file and is a no-op otherwise.
func New(opts Options, module, version string) (*slog.Logger, func() error, error) {
	var (
		w      io.Writer
		closer = func() error { return nil }
	)
	switch opts.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		if dir := filepath.Dir(opts.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("creating log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f.Close
	}

	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	logger := slog.New(h).With(
		"module", module,
		"version", version,
		"instance", instance,
	)
	return logger, closer, nil
}
