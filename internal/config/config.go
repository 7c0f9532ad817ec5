package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment. The room
// catalog is fixed at startup; the coordinator never creates or destroys rooms.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	Rooms           []string      `env:"CHAT_ROOMS" envSeparator:"," envDefault:"devops,cloud computing,covid19,sports,nodeJS"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	HistoryCacheTTL time.Duration `env:"HISTORY_CACHE_TTL" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME" envDefault:"chat"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.Rooms) == 0 {
		return nil, fmt.Errorf("CHAT_ROOMS must list at least one room")
	}
	return cfg, nil
}
