package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/mcoot/geoquiz/internal/config"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/storage/memory"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string `env:"GEOQUIZ_SERVER"       envDefault:"http://localhost:8080"`
	CatalogPath string `env:"GEOQUIZ_CATALOG_PATH"`
	Output      string `env:"GEOQUIZ_OUTPUT"       envDefault:"text"`
}

// DefaultConfig returns a Config read from the environment.
// Malformed variables fall back to the built-in defaults.
func DefaultConfig() *Config {
	c := &Config{}
	if err := config.ParseEnv(c); err != nil {
		return &Config{ServerURL: "http://localhost:8080", Output: "text"}
	}
	return c
}

// LoadCatalog returns the catalog local commands run against
func (c *Config) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.World(), nil
	}
	loader := catalog.NewLoader(memory.New(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return loader.LoadFromFile(ctx, c.CatalogPath)
}
