package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Metrics (optional - leave empty to disable the textfile export)
	MetricsFile string `env:"METRICS_FILE" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
