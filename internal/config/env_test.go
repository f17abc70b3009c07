package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"GEOQUIZ_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("GEOQUIZ_TEST_PORT", "not-an-int")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, time.Hour, cfg.SessionIdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("GEOQUIZ_HOST", "127.0.0.1")
	t.Setenv("GEOQUIZ_PORT", "9090")
	t.Setenv("GEOQUIZ_STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("GEOQUIZ_LOG_LEVEL", "debug")
	t.Setenv("GEOQUIZ_SESSION_IDLE_TTL", "30m")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Server
		wantErr string
	}{
		{"redis without url", Server{StorageType: "redis", Port: 8080, LogLevel: "info"}, "REDIS_URL"},
		{"unknown storage", Server{StorageType: "disk", Port: 8080, LogLevel: "info"}, "GEOQUIZ_STORAGE_TYPE"},
		{"bad port", Server{StorageType: "memory", Port: 70000, LogLevel: "info"}, "GEOQUIZ_PORT"},
		{"bad level", Server{StorageType: "memory", Port: 8080, LogLevel: "loud"}, "GEOQUIZ_LOG_LEVEL"},
		{"valid", Server{StorageType: "memory", Port: 8080, LogLevel: "warn"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
