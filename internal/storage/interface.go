package storage

import (
	"context"

	"github.com/mcoot/geoquiz/internal/model"
)

// Storage defines the interface for data persistence.
// Sessions are transient and never stored; only the catalog feed is.
type Storage interface {
	// Catalog feed operations
	GetCatalogFeed(ctx context.Context) (*model.CatalogFeed, error)
	SaveCatalogFeed(ctx context.Context, feed *model.CatalogFeed) error
	DeleteCatalogFeed(ctx context.Context) error
}
