package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment configuration for the bridge daemon. Credentials
// for one-shot CLI searches resolve through the flag → env → global config
// cascade instead (see internal/cli).
type Config struct {
	Port  string `envconfig:"PORT" default:"8990"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	APIKey string `envconfig:"API_KEY"`
	APIURL string `envconfig:"API_URL" default:"https://api.leadscout.dev"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("LEADSCOUT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasSentry() bool {
	return c.SentryDSN != ""
}
