package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/config"
	"github.com/rickgao/kalshi-calibration/internal/dataset"
	"github.com/rickgao/kalshi-calibration/internal/market"
	"github.com/rickgao/kalshi-calibration/internal/metrics"
	"github.com/rickgao/kalshi-calibration/internal/version"
	"github.com/rickgao/kalshi-calibration/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only when empty)")
	envFile := flag.String("env", ".env", "optional dotenv file with KALSHI_* credentials")
	testMode := flag.Bool("test", false, "test mode: cap the run at dataset.test_mode_markets")
	target := flag.Int("target", 0, "number of settled markets to collect (overrides config)")
	concurrency := flag.Int("concurrency", 0, "markets processed in parallel (overrides config)")
	output := flag.String("out", "", "output CSV path (overrides config)")
	flag.Parse()

	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := config.LoadEnvFiles(*envFile); err != nil {
		bootLogger.Error("failed to load env file", "path", *envFile, "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		bootLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *testMode {
		cfg.Dataset.TestMode = true
	}
	if *target > 0 {
		cfg.Dataset.TargetMarkets = *target
	}
	if *concurrency > 0 {
		cfg.Dataset.Concurrency = *concurrency
	}
	if err := cfg.Validate(); err != nil {
		bootLogger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	outPath := cfg.Output.DatasetPath()
	if *output != "" {
		outPath = *output
	}

	logger.Info("starting dataset build", version.LogAttrs()...)
	logger.Info("configuration loaded",
		"config", *configPath,
		"api_url", cfg.API.RestURL,
		"signed", cfg.API.HasCredentials(),
		"target", cfg.Dataset.EffectiveTarget(),
		"test_mode", cfg.Dataset.TestMode,
		"cutoff_before_close", cfg.Dataset.CutoffBeforeClose,
		"trades_window", cfg.Dataset.TradesWindow,
		"output", outPath,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal, finishing with rows built so far", "signal", sig)
		cancel()
	}()

	collector := metrics.New()
	start := time.Now()

	err = run(ctx, cfg, outPath, collector, logger)
	collector.RunFinished(time.Since(start), err == nil)
	pushMetrics(cfg.Metrics, collector, logger)

	if err != nil {
		logger.Error("dataset build failed", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset build finished", "duration", time.Since(start))
}

func run(ctx context.Context, cfg *config.Config, outPath string, collector *metrics.Collector, logger *slog.Logger) error {
	client, err := api.NewFromConfig(cfg.API,
		api.WithLogger(logger),
		api.WithObserver(collector),
	)
	if err != nil {
		return err
	}

	// Step 1: settled markets
	discoverer := market.NewDiscoverer(market.Config{
		Status:         cfg.Dataset.Status,
		FallbackStatus: cfg.Dataset.FallbackStatus,
		PageSize:       cfg.Dataset.PageSize,
		Target:         cfg.Dataset.EffectiveTarget(),
	}, client, logger)

	discovered, err := discoverer.Discover(ctx)
	var partial *market.PartialError
	switch {
	case errors.As(err, &partial):
		logger.Warn("market discovery incomplete, continuing with markets found",
			"markets", len(discovered.Markets),
			"error", err,
		)
	case err != nil:
		return err
	}
	collector.MarketsDiscovered(len(discovered.Markets))

	// Step 2: price at cutoff per market
	builder := dataset.NewBuilder(dataset.Config{
		CutoffBeforeClose: cfg.Dataset.CutoffBeforeClose,
		TradesWindow:      cfg.Dataset.TradesWindow,
		TradesPageSize:    cfg.Dataset.TradesPageSize,
		MaxTradePages:     cfg.Dataset.MaxTradePages,
		EnoughTrades:      cfg.Dataset.EnoughTrades,
		Concurrency:       cfg.Dataset.Concurrency,
	}, client, logger, dataset.WithRecorder(collector))

	report, buildErr := builder.Build(ctx, discovered.Markets)
	if buildErr != nil {
		logger.Warn("dataset build interrupted, saving rows built so far",
			"rows", len(report.Rows),
			"pending", report.Pending,
			"error", buildErr,
		)
	}

	// Step 3: save
	if len(report.Rows) == 0 {
		logger.Warn("no rows built, nothing to save")
	} else {
		w := writer.NewCSVWriter(outPath, dataset.Header, logger)
		if err := writer.WriteRows(w, report.Rows); err != nil {
			return err
		}

		summary := dataset.Summarize(report.Rows, report.Processed)
		logger.Info("dataset summary", summary.LogAttrs()...)
	}

	if buildErr != nil {
		return fmt.Errorf("build interrupted with %d markets pending: %w", report.Pending, buildErr)
	}
	return nil
}

func pushMetrics(cfg config.MetricsConfig, collector *metrics.Collector, logger *slog.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := collector.Push(ctx, cfg.PushgatewayURL, cfg.Job); err != nil {
		logger.Warn("failed to push metrics", "error", err)
		return
	}
	logger.Debug("metrics pushed", "url", cfg.PushgatewayURL, "job", cfg.Job)
}
