package config

import "time"

// Config is the root configuration shared by the dataset, snapshot and apitest tools.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Output   OutputConfig   `yaml:"output"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// APIConfig holds Kalshi API settings.
type APIConfig struct {
	RestURL        string        `yaml:"rest_url"`
	KeyID          string        `yaml:"key_id"`           // API key ID (KALSHI-ACCESS-KEY header)
	PrivateKeyPath string        `yaml:"private_key_path"` // Path to RSA private key PEM file
	Timeout        time.Duration `yaml:"timeout"`
	MaxRetries     int           `yaml:"max_retries"` // 0 uses the default, NoRetries disables retrying
	RetryBackoff   time.Duration `yaml:"retry_backoff"`
	RequestDelay   time.Duration `yaml:"request_delay"` // minimum spacing between requests
}

// NoRetries as api.max_retries turns retrying off.
const NoRetries = -1

// Retries returns the number of retries after a failed attempt.
func (a APIConfig) Retries() int {
	if a.MaxRetries < 0 {
		return 0
	}
	return a.MaxRetries
}

// HasCredentials reports whether requests should be signed.
func (a APIConfig) HasCredentials() bool {
	return a.KeyID != "" && a.PrivateKeyPath != ""
}

// DatasetConfig holds settled-market dataset settings.
type DatasetConfig struct {
	CutoffBeforeClose time.Duration `yaml:"cutoff_before_close"` // cutoff = close - this
	TradesWindow      time.Duration `yaml:"trades_window"`       // trades fetched in [cutoff - this, close]
	TargetMarkets     int           `yaml:"target_markets"`
	TestMode          bool          `yaml:"test_mode"`
	TestModeMarkets   int           `yaml:"test_mode_markets"`
	Status            string        `yaml:"status"`          // primary market status filter
	FallbackStatus    string        `yaml:"fallback_status"` // used when a primary page is empty
	PageSize          int           `yaml:"page_size"`
	TradesPageSize    int           `yaml:"trades_page_size"`
	MaxTradePages     int           `yaml:"max_trade_pages"`
	EnoughTrades      int           `yaml:"enough_trades"` // stop paging once this many in-window trades are found
	Concurrency       int           `yaml:"concurrency"`
}

// EffectiveTarget returns the number of markets to collect, honoring test mode.
func (d DatasetConfig) EffectiveTarget() int {
	if d.TestMode && d.TestModeMarkets < d.TargetMarkets {
		return d.TestModeMarkets
	}
	return d.TargetMarkets
}

// SnapshotConfig holds latest-trade snapshot settings.
type SnapshotConfig struct {
	TradesLimit int `yaml:"trades_limit"`
	MaxMarkets  int `yaml:"max_markets"`
}

// OutputConfig holds CSV output locations.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	DatasetFile  string `yaml:"dataset_file"`
	SnapshotFile string `yaml:"snapshot_file"`
}

// MetricsConfig holds Prometheus settings. Metrics are pushed at the end of a
// run when PushgatewayURL is set.
type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url"`
	Job            string `yaml:"job"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}
