package api

import (
	"fmt"

	"github.com/rickgao/kalshi-calibration/internal/auth"
	"github.com/rickgao/kalshi-calibration/internal/config"
)

// NewFromConfig builds a client from API settings. Requests are signed when
// both a key ID and a private key path are configured. Extra options are
// applied after the configured ones.
func NewFromConfig(cfg config.APIConfig, opts ...ClientOption) (*Client, error) {
	var creds *auth.Credentials
	if cfg.HasCredentials() {
		var err error
		creds, err = auth.LoadCredentials(cfg.KeyID, cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
	}

	base := []ClientOption{
		WithRetries(cfg.Retries(), cfg.RetryBackoff),
		WithRequestDelay(cfg.RequestDelay),
	}
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}
	return NewClient(cfg.RestURL, creds, append(base, opts...)...), nil
}
