// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package source loads the immutable catalog snapshot the browser works on.

Every loader produces the same [Snapshot]: books in source order plus the
author and genre registries. Loading happens once at startup; after that the
snapshot is turned into a [catalog.Library] and never touched again.

Implementations:

  - FileLoader: JSON document on disk.
  - PostgresSource: relational tables read with pgx.
  - CachedLoader: Redis snapshot cache in front of another loader.
*/
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/taibuivan/bookshelf/internal/catalog"
)

// Loader produces a catalog snapshot.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Snapshot is the raw catalog data as supplied by a data source.
//
// # JSON Shape
//
//	{
//	  "books":   [{"id": "...", "title": "...", "author": "...", "genres": ["..."],
//	               "published": "2001-01-01T00:00:00Z", "description": "...", "image": "..."}],
//	  "authors": {"<id>": "<name>", ...},
//	  "genres":  {"<id>": "<name>", ...}
//	}
type Snapshot struct {
	Books   []catalog.Book   `json:"books"`
	Authors catalog.Registry `json:"authors"`
	Genres  catalog.Registry `json:"genres"`
}

// Library validates the snapshot and builds the immutable library.
func (s *Snapshot) Library() (*catalog.Library, error) {
	library, err := catalog.NewLibrary(s.Books, &s.Authors, &s.Genres)
	if err != nil {
		return nil, fmt.Errorf("source: build library: %w", err)
	}
	return library, nil
}

// Decode reads a JSON snapshot from reader.
func Decode(reader io.Reader) (*Snapshot, error) {
	snapshot := &Snapshot{}
	if err := json.NewDecoder(reader).Decode(snapshot); err != nil {
		return nil, fmt.Errorf("source: decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Encode writes snapshot as JSON.
func Encode(writer io.Writer, snapshot *Snapshot) error {
	if err := json.NewEncoder(writer).Encode(snapshot); err != nil {
		return fmt.Errorf("source: encode snapshot: %w", err)
	}
	return nil
}
