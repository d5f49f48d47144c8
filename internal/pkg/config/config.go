// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration. Every field has a sensible local
// default; only REDIS_ADDR changes behaviour when set (it switches the
// read-model cache from the in-process map to Redis).
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath      string `env:"DB_PATH" envDefault:"./data/store.db"`
	RedisAddr   string `env:"REDIS_ADDR"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"store-service"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
