// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browse exposes the catalog facade to many concurrent visitors.

Every visitor owns a session holding one [catalog.Catalog]. The library is
shared and immutable, so the only shared mutable state is the session map.

Concurrency:

  - Store guards its map with a single mutex.
  - Session guards its catalog with its own mutex, so one visitor's requests
    are applied one at a time while different visitors proceed in parallel.
  - Idle sessions are evicted by [Store.Run] after the configured TTL.
*/
package browse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/bookshelf/internal/catalog"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/pkg/uuid"
)

// # Session

// Session is one visitor's browsing state.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	catalog *catalog.Catalog

	// lastSeen is guarded by the owning Store's mutex.
	lastSeen time.Time
}

// With runs fn while holding the session lock.
func (session *Session) With(fn func(c *catalog.Catalog) error) error {
	session.mu.Lock()
	defer session.mu.Unlock()
	return fn(session.catalog)
}

// # Store

// Store keeps live sessions keyed by a UUIDv7 identifier.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStore creates an empty store evicting sessions idle for longer than ttl.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create registers a new session around c.
func (store *Store) Create(c *catalog.Catalog) *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		catalog:   c,
		lastSeen:  now,
	}

	store.mu.Lock()
	store.sessions[session.ID] = session
	store.mu.Unlock()

	return session
}

// Get returns a live session and marks it as used. Expired sessions are
// removed and reported as missing.
func (store *Store) Get(id string) (*Session, bool) {
	now := time.Now()

	store.mu.Lock()
	defer store.mu.Unlock()

	session, ok := store.sessions[id]
	if !ok {
		return nil, false
	}
	if store.expired(session, now) {
		delete(store.sessions, id)
		return nil, false
	}

	session.lastSeen = now
	return session, true
}

// Delete removes a session. It reports whether the session existed.
func (store *Store) Delete(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.sessions[id]; !ok {
		return false
	}
	delete(store.sessions, id)
	return true
}

// Len returns the number of stored sessions, expired or not.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.sessions)
}

// Sweep evicts every session idle at now and returns how many were removed.
func (store *Store) Sweep(now time.Time) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	removed := 0
	for id, session := range store.sessions {
		if store.expired(session, now) {
			delete(store.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every [constants.SessionCleanupInterval] until
// ctx is cancelled.
func (store *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(constants.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if removed := store.Sweep(now); removed > 0 {
				store.logger.Info("browse_sessions_evicted",
					slog.Int("removed", removed),
					slog.Int("live", store.Len()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (store *Store) expired(session *Session, now time.Time) bool {
	return now.Sub(session.lastSeen) > store.ttl
}
