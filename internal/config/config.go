// Package config loads environment-variable configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-tunable settings. Command-line flags
// override these.
type Config struct {
	CatalogURL  string        `env:"STARDISC_CATALOG_URL"`
	CacheDir    string        `env:"STARDISC_CACHE_DIR"`
	OutDir      string        `env:"STARDISC_OUT_DIR" envDefault:"."`
	LogLevel    string        `env:"STARDISC_LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"STARDISC_HTTP_TIMEOUT" envDefault:"30s"`
}

// FromEnv parses configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
