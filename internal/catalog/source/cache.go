package source

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of the Redis client used by [CachedLoader].
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedLoader keeps a JSON copy of the snapshot in Redis.
//
// # Behaviour
//
//   - Hit: the cached document is decoded and returned.
//   - Miss or undecodable entry: the wrapped loader runs and the cache is refreshed.
//   - Redis errors are logged and never fail the load.
type CachedLoader struct {
	next   Loader
	cache  Cache
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedLoader wraps next with a Redis snapshot cache stored under key.
func NewCachedLoader(next Loader, cache Cache, key string, ttl time.Duration, logger *slog.Logger) *CachedLoader {
	return &CachedLoader{
		next:   next,
		cache:  cache,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// Load returns the cached snapshot or falls through to the wrapped loader.
func (loader *CachedLoader) Load(ctx context.Context) (*Snapshot, error) {
	if snapshot, ok := loader.fromCache(ctx); ok {
		loader.logger.Info("catalog_cache_hit", slog.String("key", loader.key))
		return snapshot, nil
	}

	snapshot, err := loader.next.Load(ctx)
	if err != nil {
		return nil, err
	}

	loader.store(ctx, snapshot)
	return snapshot, nil
}

func (loader *CachedLoader) fromCache(ctx context.Context) (*Snapshot, bool) {
	payload, err := loader.cache.Get(ctx, loader.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			loader.logger.Warn("catalog_cache_get_failed", slog.String("key", loader.key), slog.Any("error", err))
		}
		return nil, false
	}

	snapshot, err := Decode(bytes.NewReader(payload))
	if err != nil {
		loader.logger.Warn("catalog_cache_corrupt", slog.String("key", loader.key), slog.Any("error", err))
		return nil, false
	}

	return snapshot, true
}

func (loader *CachedLoader) store(ctx context.Context, snapshot *Snapshot) {
	var buffer bytes.Buffer
	if err := Encode(&buffer, snapshot); err != nil {
		loader.logger.Warn("catalog_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := loader.cache.Set(ctx, loader.key, buffer.Bytes(), loader.ttl).Err(); err != nil {
		loader.logger.Warn("catalog_cache_set_failed", slog.String("key", loader.key), slog.Any("error", err))
		return
	}

	loader.logger.Info("catalog_cache_stored",
		slog.String("key", loader.key),
		slog.Duration("ttl", loader.ttl),
	)
}
