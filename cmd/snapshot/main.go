package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/config"
	"github.com/rickgao/kalshi-calibration/internal/metrics"
	"github.com/rickgao/kalshi-calibration/internal/snapshot"
	"github.com/rickgao/kalshi-calibration/internal/version"
	"github.com/rickgao/kalshi-calibration/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only when empty)")
	envFile := flag.String("env", ".env", "optional dotenv file with KALSHI_* credentials")
	output := flag.String("out", "", "output CSV path (overrides config)")
	flag.Parse()

	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := config.LoadEnvFiles(*envFile); err != nil {
		bootLogger.Error("failed to load env file", "path", *envFile, "error", err)
		os.Exit(1)
	}
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		bootLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	outPath := cfg.Output.SnapshotPath()
	if *output != "" {
		outPath = *output
	}

	logger.Info("starting snapshot", version.LogAttrs()...)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal, finishing with rows taken so far", "signal", sig)
		cancel()
	}()

	collector := metrics.New()
	start := time.Now()

	err = run(ctx, cfg, outPath, collector, logger)
	collector.RunFinished(time.Since(start), err == nil)
	pushMetrics(cfg.Metrics, collector, logger)

	if err != nil {
		logger.Error("snapshot failed", "error", err)
		os.Exit(1)
	}
	logger.Info("snapshot finished", "duration", time.Since(start))
}

func run(ctx context.Context, cfg *config.Config, outPath string, collector *metrics.Collector, logger *slog.Logger) error {
	client, err := api.NewFromConfig(cfg.API,
		api.WithLogger(logger),
		api.WithObserver(collector),
	)
	if err != nil {
		return err
	}

	s := snapshot.NewSnapshotter(snapshot.Config{
		TradesLimit: cfg.Snapshot.TradesLimit,
		MaxMarkets:  cfg.Snapshot.MaxMarkets,
	}, client, collector, logger)

	rows, takeErr := s.Take(ctx)
	if takeErr != nil && len(rows) == 0 {
		return takeErr
	}
	if takeErr != nil {
		logger.Warn("snapshot interrupted, saving rows taken so far", "rows", len(rows), "error", takeErr)
	}

	w := writer.NewCSVWriter(outPath, snapshot.Header, logger)
	if err := writer.WriteRows(w, rows); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", outPath, "rows", len(rows))

	if takeErr != nil {
		return fmt.Errorf("snapshot interrupted after %d rows: %w", len(rows), takeErr)
	}
	return nil
}

func pushMetrics(cfg config.MetricsConfig, collector *metrics.Collector, logger *slog.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := collector.Push(ctx, cfg.PushgatewayURL, cfg.Job+"_snapshot"); err != nil {
		logger.Warn("failed to push metrics", "error", err)
		return
	}
	logger.Debug("metrics pushed", "url", cfg.PushgatewayURL, "job", cfg.Job+"_snapshot")
}
