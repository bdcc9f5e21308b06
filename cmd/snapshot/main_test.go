package main

import (
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/config"
	"github.com/rickgao/kalshi-calibration/internal/metrics"
)

func TestRun_InterruptedSnapshotKeepsRowsAndFails(t *testing.T) {
	t.Setenv(config.EnvKeyID, "")
	t.Setenv(config.EnvPrivateKeyPath, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/markets/trades":
			w.Write([]byte(`{"trades": [
				{"ticker": "A", "yes_price_dollars": "0.4000", "created_time": "2024-11-05T12:00:00Z"},
				{"ticker": "B", "yes_price_dollars": "0.5500", "created_time": "2024-11-05T12:01:00Z"}
			]}`))
		case "/markets/A":
			w.Write([]byte(`{"market": {"ticker": "A", "title": "Will A happen?"}}`))
		case "/markets/B":
			cancel()
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg, err := config.LoadWithDefaults("")
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}
	cfg.API.RestURL = server.URL
	cfg.API.RequestDelay = time.Millisecond
	cfg.API.RetryBackoff = time.Minute

	outPath := filepath.Join(t.TempDir(), "snapshot.csv")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err = run(ctx, cfg, outPath, metrics.New(), logger)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run() error = %v, want context.Canceled", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("partial snapshot not written: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 || records[1][0] != "A" || records[1][1] != "Will A happen?" {
		t.Errorf("records = %v, want header plus the row for A", records)
	}
}

func TestRun_TradesUnavailable(t *testing.T) {
	t.Setenv(config.EnvKeyID, "")
	t.Setenv(config.EnvPrivateKeyPath, "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	cfg, err := config.LoadWithDefaults("")
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}
	cfg.API.RestURL = server.URL
	cfg.API.RequestDelay = time.Millisecond

	outPath := filepath.Join(t.TempDir(), "snapshot.csv")
	if err := run(context.Background(), cfg, outPath, metrics.New(), slog.Default()); err == nil {
		t.Fatal("run() error = nil, want trades failure")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("snapshot file exists after failed run: %v", err)
	}
}
