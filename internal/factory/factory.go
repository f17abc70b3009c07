package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
	"github.com/mcoot/geoquiz/internal/dependencies/random"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/services/resolver"
	"github.com/mcoot/geoquiz/internal/services/session"
	"github.com/mcoot/geoquiz/internal/services/suggest"
	"github.com/mcoot/geoquiz/internal/storage"
	"github.com/mcoot/geoquiz/internal/storage/memory"
	redisstorage "github.com/mcoot/geoquiz/internal/storage/redis"
	"github.com/mcoot/geoquiz/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Scheduler clock.Scheduler
	Random    random.Random

	// Services
	Catalog     *catalog.Catalog
	Resolver    *resolver.Resolver
	Suggest     *suggest.Service
	Sessions    *session.Manager
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogPath is a JSON catalog feed to load (optional)
	// If empty, the stored feed is used, seeded with the world catalog
	CatalogPath string
	// SessionIdleTTL is how long finished or idle sessions are kept (optional)
	// Zero keeps them until deleted
	SessionIdleTTL time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	cat, err := loadCatalog(ctx, store, cfg.CatalogPath, logger)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, cat, clock.New(), clock.NewScheduler(), random.New(), cfg.SessionIdleTTL, logger), nil
}

func loadCatalog(ctx context.Context, store storage.Storage, path string, logger *slog.Logger) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(store, logger)
	if path != "" {
		return loader.LoadFromFile(ctx, path)
	}
	return loader.LoadOrSeed(ctx)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	cat *catalog.Catalog,
	clk clock.Clock,
	sched clock.Scheduler,
	rnd random.Random,
	idleTTL time.Duration,
	logger *slog.Logger,
) *App {
	res := resolver.New(cat)
	sessions := session.NewManager(cat, res, sched, clk, rnd, idleTTL, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, sse.NewRenderer(cat), logger)

	// Every session streams to its SSE hub; hubs go away with their session
	sessions.OnCreated(func(s *session.Session) {
		broadcaster.Attach(s)
	})
	sessions.OnRemoved(func(id model.SessionID) {
		hubManager.RemoveHub(id)
	})

	return &App{
		Storage:     store,
		Clock:       clk,
		Scheduler:   sched,
		Random:      rnd,
		Catalog:     cat,
		Resolver:    res,
		Suggest:     suggest.New(cat),
		Sessions:    sessions,
		HubManager:  hubManager,
		Broadcaster: broadcaster,
	}
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
