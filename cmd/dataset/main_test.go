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

func TestRun_InterruptedBuildKeepsRowsAndFails(t *testing.T) {
	t.Setenv(config.EnvKeyID, "")
	t.Setenv(config.EnvPrivateKeyPath, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(`{"markets": [
				{"ticker": "A", "result": "yes", "close_time": "2024-11-05T18:00:00Z"},
				{"ticker": "B", "result": "no", "close_time": "2024-11-05T18:00:00Z"}
			]}`))
		case "/markets/A":
			w.Write([]byte(`{"market": {"ticker": "A", "last_price_dollars": "0.5500"}}`))
		case "/markets/trades":
			w.Write([]byte(`{"trades": []}`))
		case "/markets/B":
			// Shutdown arrives while the second market is in flight.
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

	outPath := filepath.Join(t.TempDir(), "dataset.csv")
	collector := metrics.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err = run(ctx, cfg, outPath, collector, logger)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run() error = %v, want context.Canceled", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("partial dataset not written: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 || records[1][0] != "A" || records[1][3] != "0.55" {
		t.Errorf("records = %v, want header plus the row for A", records)
	}
}

func TestRun_CompletedBuildSucceeds(t *testing.T) {
	t.Setenv(config.EnvKeyID, "")
	t.Setenv(config.EnvPrivateKeyPath, "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/markets":
			w.Write([]byte(`{"markets": [{"ticker": "A", "result": "no", "close_time": "2024-11-05T18:00:00Z"}]}`))
		case "/markets/A":
			w.Write([]byte(`{"market": {"ticker": "A", "previous_price_dollars": "0.2000"}}`))
		default:
			w.Write([]byte(`{"trades": []}`))
		}
	}))
	defer server.Close()

	cfg, err := config.LoadWithDefaults("")
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}
	cfg.API.RestURL = server.URL
	cfg.API.RequestDelay = time.Millisecond

	outPath := filepath.Join(t.TempDir(), "dataset.csv")
	if err := run(context.Background(), cfg, outPath, metrics.New(), slog.Default()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("dataset not written: %v", err)
	}
}
