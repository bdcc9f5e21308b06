package config

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// SlogLevel returns the configured level, defaulting to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
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

// NewLogger builds a text or JSON slog logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DatasetPath returns the dataset CSV location.
func (o OutputConfig) DatasetPath() string {
	return filepath.Join(o.Dir, o.DatasetFile)
}

// SnapshotPath returns the snapshot CSV location.
func (o OutputConfig) SnapshotPath() string {
	return filepath.Join(o.Dir, o.SnapshotFile)
}
