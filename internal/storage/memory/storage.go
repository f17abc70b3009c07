package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu   sync.RWMutex
	feed *model.CatalogFeed
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Catalog feed operations

func (s *Storage) GetCatalogFeed(ctx context.Context) (*model.CatalogFeed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.feed == nil {
		return nil, model.ErrCatalogNotLoaded
	}
	return copyFeed(s.feed), nil
}

func (s *Storage) SaveCatalogFeed(ctx context.Context, feed *model.CatalogFeed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = copyFeed(feed)
	return nil
}

func (s *Storage) DeleteCatalogFeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = nil
	return nil
}

// copyFeed deep-copies a feed so callers never share slices with storage
func copyFeed(feed *model.CatalogFeed) *model.CatalogFeed {
	out := &model.CatalogFeed{
		Aliases: make(map[model.EntityID][]string, len(feed.Aliases)),
		Markers: maps.Clone(feed.Markers),
	}
	for _, r := range feed.Regions {
		def := model.RegionDef{Name: r.Name, Color: r.Color}
		for _, sub := range r.Subregions {
			def.Subregions = append(def.Subregions, model.SubregionDef{Name: sub.Name, Members: slices.Clone(sub.Members)})
		}
		out.Regions = append(out.Regions, def)
	}
	for id, aliases := range feed.Aliases {
		out.Aliases[id] = slices.Clone(aliases)
	}
	return out
}
