package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (LoggingConfig{Level: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := LoggingConfig{Level: "info", Format: "json"}.NewLogger(&buf)
		logger.Debug("hidden")
		logger.Info("shown", "rows", 3)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("output is not a single JSON line: %v (%q)", err, buf.String())
		}
		if entry["msg"] != "shown" || entry["rows"] != float64(3) {
			t.Errorf("entry = %v", entry)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		LoggingConfig{Level: "debug", Format: "text"}.NewLogger(&buf).Debug("visible")
		if !strings.Contains(buf.String(), "msg=visible") {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestOutputPaths(t *testing.T) {
	o := OutputConfig{Dir: "out", DatasetFile: "dataset.csv", SnapshotFile: "dataset_phase1.csv"}
	if got := o.DatasetPath(); got != "out/dataset.csv" {
		t.Errorf("DatasetPath() = %q", got)
	}
	if got := o.SnapshotPath(); got != "out/dataset_phase1.csv" {
		t.Errorf("SnapshotPath() = %q", got)
	}
}
