package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.RestURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.rest_url must be an absolute URL, got %q", c.API.RestURL)
	}
	if (c.API.KeyID == "") != (c.API.PrivateKeyPath == "") {
		return errors.New("api.key_id and api.private_key_path must be set together")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}
	if c.API.MaxRetries < NoRetries {
		return fmt.Errorf("api.max_retries must be >= %d, got %d", NoRetries, c.API.MaxRetries)
	}
	if c.API.RetryBackoff < 0 {
		return errors.New("api.retry_backoff must be >= 0")
	}
	if c.API.RequestDelay < 0 {
		return errors.New("api.request_delay must be >= 0")
	}

	if err := c.Dataset.validate(); err != nil {
		return err
	}

	if c.Snapshot.TradesLimit < 1 || c.Snapshot.TradesLimit > 1000 {
		return fmt.Errorf("snapshot.trades_limit must be between 1 and 1000, got %d", c.Snapshot.TradesLimit)
	}
	if c.Snapshot.MaxMarkets < 1 {
		return errors.New("snapshot.max_markets must be >= 1")
	}

	if c.Output.DatasetFile == "" || c.Output.SnapshotFile == "" {
		return errors.New("output.dataset_file and output.snapshot_file are required")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

func (d *DatasetConfig) validate() error {
	if d.CutoffBeforeClose <= 0 {
		return errors.New("dataset.cutoff_before_close must be > 0")
	}
	if d.TradesWindow <= 0 {
		return errors.New("dataset.trades_window must be > 0")
	}
	if d.TargetMarkets < 1 {
		return errors.New("dataset.target_markets must be >= 1")
	}
	if d.PageSize < 1 || d.PageSize > 1000 {
		return fmt.Errorf("dataset.page_size must be between 1 and 1000, got %d", d.PageSize)
	}
	if d.TradesPageSize < 1 || d.TradesPageSize > 1000 {
		return fmt.Errorf("dataset.trades_page_size must be between 1 and 1000, got %d", d.TradesPageSize)
	}
	if d.MaxTradePages < 1 {
		return errors.New("dataset.max_trade_pages must be >= 1")
	}
	if d.EnoughTrades < 1 {
		return errors.New("dataset.enough_trades must be >= 1")
	}
	if d.Concurrency < 1 {
		return errors.New("dataset.concurrency must be >= 1")
	}
	return nil
}
