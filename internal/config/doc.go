// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// An optional .env file is loaded first so credentials can stay out of the YAML.
// KALSHI_KEY_ID and KALSHI_PRIVATE_KEY_PATH fill in credentials the file leaves empty.
package config
