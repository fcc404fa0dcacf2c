package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// OTel holds metrics exporter configuration.
type OTel struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint string `env:"OTEL_ENDPOINT"`
	Insecure bool   `env:"OTEL_INSECURE" envDefault:"false"`
}

// Config holds runtime configuration for tourneytally.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	OTel     OTel
}

// Prefix is prepended to every environment variable name.
const Prefix = "TOURNEYTALLY_"

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.OTel.Enabled && cfg.OTel.Endpoint == "" {
		return nil, fmt.Errorf("%sOTEL_ENDPOINT is required when metrics export is enabled", Prefix)
	}
	return &cfg, nil
}
