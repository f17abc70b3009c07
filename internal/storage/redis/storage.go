package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Catalog feed operations

// SaveCatalogFeed replaces the stored feed in a single transaction
func (s *Storage) SaveCatalogFeed(ctx context.Context, feed *model.CatalogFeed) error {
	regions, err := json.Marshal(feed.Regions)
	if err != nil {
		return err
	}

	aliases := make(map[string]any, len(feed.Aliases))
	for id, names := range feed.Aliases {
		data, err := json.Marshal(names)
		if err != nil {
			return err
		}
		aliases[strconv.Itoa(int(id))] = data
	}

	markers := make(map[string]any, len(feed.Markers))
	for id, coords := range feed.Markers {
		data, err := json.Marshal(coords)
		if err != nil {
			return err
		}
		markers[strconv.Itoa(int(id))] = data
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, catalogRegionsKey(), catalogAliasesKey(), catalogMarkersKey())
	pipe.Set(ctx, catalogRegionsKey(), regions, s.cfg.CatalogTTL)
	if len(aliases) > 0 {
		pipe.HSet(ctx, catalogAliasesKey(), aliases)
	}
	if len(markers) > 0 {
		pipe.HSet(ctx, catalogMarkersKey(), markers)
	}
	if s.cfg.CatalogTTL > 0 {
		pipe.Expire(ctx, catalogAliasesKey(), s.cfg.CatalogTTL)
		pipe.Expire(ctx, catalogMarkersKey(), s.cfg.CatalogTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCatalogFeed(ctx context.Context) (*model.CatalogFeed, error) {
	data, err := s.client.Get(ctx, catalogRegionsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCatalogNotLoaded
		}
		return nil, err
	}

	feed := &model.CatalogFeed{
		Aliases: make(map[model.EntityID][]string),
		Markers: make(map[model.EntityID]model.Coordinates),
	}
	if err := json.Unmarshal(data, &feed.Regions); err != nil {
		return nil, err
	}

	pipe := s.client.Pipeline()
	aliasCmd := pipe.HGetAll(ctx, catalogAliasesKey())
	markerCmd := pipe.HGetAll(ctx, catalogMarkersKey())
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	for field, value := range aliasCmd.Val() {
		id, err := parseEntityID(field)
		if err != nil {
			return nil, err
		}
		var names []string
		if err := json.Unmarshal([]byte(value), &names); err != nil {
			return nil, err
		}
		feed.Aliases[id] = names
	}

	for field, value := range markerCmd.Val() {
		id, err := parseEntityID(field)
		if err != nil {
			return nil, err
		}
		var coords model.Coordinates
		if err := json.Unmarshal([]byte(value), &coords); err != nil {
			return nil, err
		}
		feed.Markers[id] = coords
	}

	return feed, nil
}

func (s *Storage) DeleteCatalogFeed(ctx context.Context) error {
	return s.client.Del(ctx, catalogRegionsKey(), catalogAliasesKey(), catalogMarkersKey()).Err()
}

func parseEntityID(field string) (model.EntityID, error) {
	id, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad entity id %q in catalog hash: %w", field, err)
	}
	return model.EntityID(id), nil
}
