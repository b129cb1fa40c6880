// Copyright (c) 2026 WebNDB. All rights reserved.

/*
Package search owns the server side of the novel search form: per-session
filter stores, the compilation of filter snapshots into catalog queries,
and the HTTP surface the search UI drives.

Architecture:

  - Sessions: page-lifetime registry of [filter.Store] instances.
  - Query building: pure translation of a [filter.Snapshot] into SQL.
  - Service/Handler: the teacher pattern shared by all domain packages.
*/
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/internal/platform/constants"
	"github.com/webndb/webndb/internal/platform/metrics"
	"github.com/webndb/webndb/internal/search/filter"
	"github.com/webndb/webndb/pkg/uuidv7"
)

type sessionEntry struct {
	store    *filter.Store
	lastSeen time.Time
}

// Sessions is the registry of live filter stores, keyed by opaque session ID.
//
// Sessions mirror page lifetime: created when a client opens the search
// form, swept after [constants.SearchSessionTTL] of inactivity, never
// persisted.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	logger  *slog.Logger
}

// NewSessions creates the registry and starts the background sweep routine,
// which stops when ctx is cancelled.
func NewSessions(ctx context.Context, logger *slog.Logger) *Sessions {
	sessions := &Sessions{
		entries: make(map[string]*sessionEntry),
		ttl:     constants.SearchSessionTTL,
		logger:  logger,
	}

	go func() {
		ticker := time.NewTicker(constants.SearchSessionSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sessions.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()

	return sessions
}

// Create registers a fresh store with default filter state and returns its ID.
func (sessions *Sessions) Create() (string, *filter.Store) {
	id := uuidv7.New()
	store := filter.NewStore()

	sessions.mu.Lock()
	sessions.entries[id] = &sessionEntry{store: store, lastSeen: time.Now()}
	count := len(sessions.entries)
	sessions.mu.Unlock()

	metrics.SetActiveSessions(count)
	sessions.logger.Debug("search_session_created", slog.String("session_id", id))

	return id, store
}

// Get returns the store for a session ID and refreshes its activity clock.
// Unknown or expired sessions yield apperr.NotFound.
func (sessions *Sessions) Get(id string) (*filter.Store, error) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()

	entry, ok := sessions.entries[id]
	if !ok {
		return nil, apperr.NotFound("Search session")
	}

	entry.lastSeen = time.Now()
	return entry.store, nil
}

// Delete removes a session explicitly (client closed the page).
func (sessions *Sessions) Delete(id string) {
	sessions.mu.Lock()
	delete(sessions.entries, id)
	count := len(sessions.entries)
	sessions.mu.Unlock()

	metrics.SetActiveSessions(count)
}

// Len reports the number of live sessions.
func (sessions *Sessions) Len() int {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	return len(sessions.entries)
}

// sweep drops sessions idle longer than the TTL.
func (sessions *Sessions) sweep() {
	cutoff := time.Now().Add(-sessions.ttl)

	sessions.mu.Lock()
	removed := 0
	for id, entry := range sessions.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(sessions.entries, id)
			removed++
		}
	}
	count := len(sessions.entries)
	sessions.mu.Unlock()

	metrics.SetActiveSessions(count)
	if removed > 0 {
		sessions.logger.Info("search_sessions_swept",
			slog.Int("removed", removed),
			slog.Int("remaining", count),
		)
	}
}
