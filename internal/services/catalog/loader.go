package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/storage"
)

// Loader builds catalogs from JSON feed files or from storage.
// Feeds loaded from files are saved to storage so other instances can
// load the same catalog without the file.
type Loader struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewLoader creates a new Loader
func NewLoader(storage storage.Storage, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Loader{
		storage: storage,
		logger:  logger.With(slog.String("component", "catalog")),
	}
}

// LoadFromStorage builds a catalog from the feed held in storage
func (l *Loader) LoadFromStorage(ctx context.Context) (*Catalog, error) {
	feed, err := l.storage.GetCatalogFeed(ctx)
	if err != nil {
		return nil, err
	}
	return l.build(*feed, "storage")
}

// LoadFromFile reads a JSON feed, saves it to storage and builds a catalog
func (l *Loader) LoadFromFile(ctx context.Context, path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(ctx, file)
}

// LoadFromReader decodes a JSON feed, saves it to storage and builds a catalog
func (l *Loader) LoadFromReader(ctx context.Context, r io.Reader) (*Catalog, error) {
	var feed model.CatalogFeed
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %v", model.ErrInvalidCatalog, err)
	}

	cat, err := l.build(feed, "file")
	if err != nil {
		return nil, err
	}

	if err := l.storage.SaveCatalogFeed(ctx, &feed); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadOrSeed loads the stored catalog, seeding storage with the built-in
// world data when nothing has been stored yet
func (l *Loader) LoadOrSeed(ctx context.Context) (*Catalog, error) {
	cat, err := l.LoadFromStorage(ctx)
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, model.ErrCatalogNotLoaded) {
		return nil, err
	}

	feed := WorldFeed()
	if err := l.storage.SaveCatalogFeed(ctx, &feed); err != nil {
		return nil, err
	}
	return l.build(feed, "builtin")
}

func (l *Loader) build(feed model.CatalogFeed, source string) (*Catalog, error) {
	cat, err := New(feed)
	if err != nil {
		l.logger.Error("catalog rejected",
			slog.String("source", source),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	l.logger.Info("catalog loaded",
		slog.String("source", source),
		slog.Int("entities", cat.Len()),
		slog.Int("regions", len(cat.regions)),
	)
	return cat, nil
}
