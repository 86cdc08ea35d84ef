// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the bookshelf HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from .env and environment variables.
//  3. Connect to PostgreSQL and run migrations (when DATABASE_URL is set).
//  4. Connect to Redis (when REDIS_URL is set).
//  5. Load the catalog snapshot and build the library.
//  6. Wire HTTP handlers and the session store.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookshelf/internal/api"
	"github.com/taibuivan/bookshelf/internal/browse"
	"github.com/taibuivan/bookshelf/internal/catalog"
	"github.com/taibuivan/bookshelf/internal/catalog/source"
	"github.com/taibuivan/bookshelf/internal/platform/config"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/migration"
	pgstore "github.com/taibuivan/bookshelf/internal/platform/postgres"
	redisstore "github.com/taibuivan/bookshelf/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Int("page_size", cfg.PageSize),
		slog.Bool("postgres", cfg.HasDatabase()),
		slog.Bool("redis", cfg.HasCache()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	healthDeps := api.HealthDependencies{}

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		healthDeps.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.HasCache() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		healthDeps.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 5. Catalog ────────────────────────────────────────────────────────
	snapshot, err := newLoader(cfg, pool, rdb, log).Load(startupCtx)
	must(log, err, "load catalog")

	library, err := snapshot.Library()
	must(log, err, "build library")

	healthDeps.CatalogSize = library.Len
	log.Info("catalog_loaded",
		slog.Int("books", library.Len()),
		slog.Int("authors", library.Authors().Len()),
		slog.Int("genres", library.Genres().Len()),
	)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	sessions := browse.NewStore(cfg.SessionTTL, log)
	go sessions.Run(appCtx)

	liveness, readiness := api.NewHealthHandlers(healthDeps, log)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(library),
		Browse:    browse.NewHandler(browse.NewService(library, sessions, cfg.PageSize, log)),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	appCancel()

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLoader picks the catalog source: PostgreSQL (optionally behind the Redis
// snapshot cache) when a database is configured, the JSON file otherwise.
func newLoader(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, log *slog.Logger) source.Loader {
	if pool == nil {
		if rdb != nil {
			log.Warn("redis_cache_unused", slog.String("reason", "snapshot cache only fronts postgres"))
		}
		log.Info("catalog_source_selected", slog.String("source", "file"), slog.String("path", cfg.CatalogFile))
		return source.NewFileLoader(cfg.CatalogFile)
	}

	var loader source.Loader = source.NewPostgresSource(pool)
	if rdb != nil {
		loader = source.NewCachedLoader(loader, rdb, cfg.CacheKey, cfg.CacheTTL, log)
	}

	log.Info("catalog_source_selected", slog.String("source", "postgres"), slog.Bool("cached", rdb != nil))
	return loader
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
