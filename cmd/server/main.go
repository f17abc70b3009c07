package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/geoquiz/internal/api"
	"github.com/mcoot/geoquiz/internal/config"
	"github.com/mcoot/geoquiz/internal/factory"
	redisstorage "github.com/mcoot/geoquiz/internal/storage/redis"
)

func main() {
	// Load configuration from environment
	env, err := config.LoadServer()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: env.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		CatalogPath:    env.CatalogPath,
		SessionIdleTTL: env.SessionIdleTTL,
		Logger:         logger,
		StorageType:    env.StorageType,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = env.RedisURL
		cfg.RedisConfig = &redisCfg
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Drop idle sessions and hubs without listeners
	stopCleanup := app.Sessions.RunCleanup(env.CleanupInterval)
	defer stopCleanup()
	stopHubCleanup := app.Scheduler.Every(env.CleanupInterval, func() {
		app.HubManager.CleanupEmptyHubs()
	})
	defer stopHubCleanup()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		Sessions:    app.Sessions,
		Catalog:     app.Catalog,
		Suggest:     app.Suggest,
		HubManager:  app.HubManager,
		Broadcaster: app.Broadcaster,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)

	// Create server
	server := api.NewServer(mux, api.ServerConfigFrom(env), logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", env.StorageType),
		slog.Int("catalog_entities", app.Catalog.Len()),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
