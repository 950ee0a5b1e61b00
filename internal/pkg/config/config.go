package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	BaseURL  string `env:"STOREFRONT_API_URL, default=http://localhost:8000"`
	Env      string `env:"ENV,                default=development"`
	LogLevel string `env:"LOG_LEVEL,          default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Backend selects where the session lives: "file" or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Path is the session file location; empty means the user config dir.
	Path string `env:"SESSION_FILE"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
