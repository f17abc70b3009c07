package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Server holds the quiz server settings read from the environment
type Server struct {
	Host            string        `env:"GEOQUIZ_HOST"              envDefault:"0.0.0.0"`
	Port            int           `env:"GEOQUIZ_PORT"              envDefault:"8080"`
	StorageType     string        `env:"GEOQUIZ_STORAGE_TYPE"      envDefault:"memory"`
	RedisURL        string        `env:"REDIS_URL"`
	CatalogPath     string        `env:"GEOQUIZ_CATALOG_PATH"`
	LogLevel        string        `env:"GEOQUIZ_LOG_LEVEL"         envDefault:"info"`
	SessionIdleTTL  time.Duration `env:"GEOQUIZ_SESSION_IDLE_TTL"  envDefault:"1h"`
	CleanupInterval time.Duration `env:"GEOQUIZ_CLEANUP_INTERVAL"  envDefault:"5m"`
}

// LoadServer parses and validates the server configuration
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c Server) Validate() error {
	switch c.StorageType {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL required when GEOQUIZ_STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid GEOQUIZ_STORAGE_TYPE %q: must be 'memory' or 'redis'", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid GEOQUIZ_PORT %d", c.Port)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr returns the host:port listen address
func (c Server) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SlogLevel returns the configured log level, defaulting to info
func (c Server) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid GEOQUIZ_LOG_LEVEL %q", s)
	}
	return level, nil
}
