package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted for credentials.
const (
	EnvKeyID          = "KALSHI_KEY_ID"
	EnvPrivateKeyPath = "KALSHI_PRIVATE_KEY_PATH"
	EnvRestURL        = "KALSHI_API_URL"
)

// LoadEnvFiles loads .env style files into the process environment. Missing
// files are ignored; variables already set are not overridden.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// Load reads a YAML config file and expands environment variables.
// An empty path yields an empty config so the tools can run on defaults and env alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// Expand ${VAR} environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnv fills fields the file left empty from the environment.
func (c *Config) applyEnv() {
	if c.API.KeyID == "" {
		c.API.KeyID = os.Getenv(EnvKeyID)
	}
	if c.API.PrivateKeyPath == "" {
		c.API.PrivateKeyPath = os.Getenv(EnvPrivateKeyPath)
	}
	if c.API.RestURL == "" {
		c.API.RestURL = os.Getenv(EnvRestURL)
	}
}
