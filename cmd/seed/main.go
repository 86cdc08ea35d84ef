// Command seed copies a JSON catalog snapshot into PostgreSQL.
//
// It applies the migrations first, so it can run against an empty database:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed -file ./data/catalog.json
//
// With -reset every migration is reverted before the schema is rebuilt.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/taibuivan/bookshelf/internal/catalog/source"
	"github.com/taibuivan/bookshelf/internal/platform/config"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/migration"
	pgstore "github.com/taibuivan/bookshelf/internal/platform/postgres"
	redisstore "github.com/taibuivan/bookshelf/internal/platform/redis"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "bookshelf-seed"))

	cfg, err := config.Load()
	if err != nil {
		fail(log, "load configuration", err)
	}

	file := flag.String("file", cfg.CatalogFile, "path of the JSON catalog snapshot")
	reset := flag.Bool("reset", false, "revert all migrations before seeding")
	flag.Parse()

	if !cfg.HasDatabase() {
		fail(log, "load configuration", errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.GlobalRequestTimeout)
	defer cancel()

	snapshot, err := source.NewFileLoader(*file).Load(ctx)
	if err != nil {
		fail(log, "read snapshot", err)
	}

	// Validate before touching the database.
	library, err := snapshot.Library()
	if err != nil {
		fail(log, "validate snapshot", err)
	}

	if *reset {
		if err := migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			fail(log, "reset schema", err)
		}
	}
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		fail(log, "run migrations", err)
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		fail(log, "connect to postgres", err)
	}
	defer pool.Close()

	if err := source.NewPostgresSource(pool).Save(ctx, snapshot); err != nil {
		pool.Close()
		fail(log, "save snapshot", err)
	}

	// A cached snapshot would hide the new rows until it expires.
	if cfg.HasCache() {
		invalidateCache(ctx, cfg, log)
	}

	log.Info("seed_completed",
		slog.String("file", *file),
		slog.Int("books", library.Len()),
		slog.Int("authors", library.Authors().Len()),
		slog.Int("genres", library.Genres().Len()),
	)
}

func fail(log *slog.Logger, step string, err error) {
	log.Error("seed_failed", slog.String("step", step), slog.Any("error", err))
	os.Exit(1)
}

func invalidateCache(ctx context.Context, cfg *config.Config, log *slog.Logger) {
	rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Warn("cache_invalidation_skipped", slog.Any("error", err))
		return
	}
	defer rdb.Close()

	if err := rdb.Del(ctx, cfg.CacheKey).Err(); err != nil {
		log.Warn("cache_invalidation_failed", slog.String("key", cfg.CacheKey), slog.Any("error", err))
		return
	}
	log.Info("cache_invalidated", slog.String("key", cfg.CacheKey))
}
