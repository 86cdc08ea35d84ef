// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct. A local '.env' file, when present, is merged into the process
environment first via 'joho/godotenv'; variables already set in the
environment always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

PostgreSQL and Redis are optional. Without DATABASE_URL the catalog is read
from CATALOG_FILE; without REDIS_URL the snapshot cache is skipped.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/bookshelf/pkg/pagination"
)

// # Configuration Schema

// Config holds all runtime configuration for the bookshelf API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PageSize is the number of books revealed per batch.
	PageSize int `env:"PAGE_SIZE" envDefault:"36"`

	// CatalogFile is the JSON snapshot used when no database is configured.
	CatalogFile string `env:"CATALOG_FILE" envDefault:"./data/catalog.json"`

	// Relational Database (PostgreSQL), optional
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis), optional
	RedisURL string        `env:"REDIS_URL"`
	CacheKey string        `env:"CATALOG_CACHE_KEY" envDefault:"bookshelf:catalog:snapshot"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`

	// SessionTTL is how long an idle browse session is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"localhost"`
}

// # Configuration Loading

// Load merges an optional .env file and parses environment variables into a [Config].
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PageSize <= 0 || c.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("config: PAGE_SIZE must be between 1 and %d, got %d", pagination.MaxPageSize, c.PageSize)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.DatabaseURL == "" && c.CatalogFile == "" {
		return errors.New("config: either DATABASE_URL or CATALOG_FILE must be set")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a PostgreSQL catalog source is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasCache reports whether a Redis snapshot cache is configured.
func (c *Config) HasCache() bool {
	return c.RedisURL != ""
}
