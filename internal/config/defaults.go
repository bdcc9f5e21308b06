package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL           = "https://demo-api.kalshi.co/trade-api/v2"
	DefaultAPITimeout        = 30 * time.Second
	DefaultMaxRetries        = 3
	DefaultRetryBackoff      = 1 * time.Second
	DefaultRequestDelay      = 200 * time.Millisecond
	DefaultCutoffBeforeClose = 6 * time.Hour
	DefaultTradesWindow      = 24 * time.Hour
	DefaultTargetMarkets     = 300
	DefaultTestModeMarkets   = 20
	DefaultMarketStatus      = "settled"
	DefaultFallbackStatus    = "finalized"
	DefaultPageSize          = 100
	DefaultTradesPageSize    = 1000
	DefaultMaxTradePages     = 10
	DefaultEnoughTrades      = 10
	DefaultConcurrency       = 1
	DefaultSnapshotTrades    = 500
	DefaultSnapshotMarkets   = 20
	DefaultOutputDir         = "."
	DefaultDatasetFile       = "dataset.csv"
	DefaultSnapshotFile      = "dataset_phase1.csv"
	DefaultMetricsJob        = "kalshi_calibration"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.RestURL == "" {
		c.API.RestURL = DefaultRestURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}
	if c.API.RequestDelay == 0 {
		c.API.RequestDelay = DefaultRequestDelay
	}

	// Dataset defaults
	d := &c.Dataset
	if d.CutoffBeforeClose == 0 {
		d.CutoffBeforeClose = DefaultCutoffBeforeClose
	}
	if d.TradesWindow == 0 {
		d.TradesWindow = DefaultTradesWindow
	}
	if d.TargetMarkets == 0 {
		d.TargetMarkets = DefaultTargetMarkets
	}
	if d.TestModeMarkets == 0 {
		d.TestModeMarkets = DefaultTestModeMarkets
	}
	if d.Status == "" {
		d.Status = DefaultMarketStatus
	}
	if d.FallbackStatus == "" {
		d.FallbackStatus = DefaultFallbackStatus
	}
	if d.PageSize == 0 {
		d.PageSize = DefaultPageSize
	}
	if d.TradesPageSize == 0 {
		d.TradesPageSize = DefaultTradesPageSize
	}
	if d.MaxTradePages == 0 {
		d.MaxTradePages = DefaultMaxTradePages
	}
	if d.EnoughTrades == 0 {
		d.EnoughTrades = DefaultEnoughTrades
	}
	if d.Concurrency == 0 {
		d.Concurrency = DefaultConcurrency
	}

	// Snapshot defaults
	if c.Snapshot.TradesLimit == 0 {
		c.Snapshot.TradesLimit = DefaultSnapshotTrades
	}
	if c.Snapshot.MaxMarkets == 0 {
		c.Snapshot.MaxMarkets = DefaultSnapshotMarkets
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.DatasetFile == "" {
		c.Output.DatasetFile = DefaultDatasetFile
	}
	if c.Output.SnapshotFile == "" {
		c.Output.SnapshotFile = DefaultSnapshotFile
	}

	// Metrics and logging defaults
	if c.Metrics.Job == "" {
		c.Metrics.Job = DefaultMetricsJob
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}
