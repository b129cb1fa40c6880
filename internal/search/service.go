// Copyright (c) 2026 WebNDB. All rights reserved.

package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/internal/search/filter"
)

// DateLayout is the wire format for release-date bounds.
const DateLayout = "2006-01-02"

// Service coordinates session lookup, filter-state mutation, and query
// execution for the search form.
type Service struct {
	sessions *Sessions
	repo     Repository
	logger   *slog.Logger
}

func NewService(sessions *Sessions, repo Repository, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		repo:     repo,
		logger:   logger,
	}
}

// # Session Lifecycle

// CreateSession opens a fresh filter session and returns its ID with the
// default state.
func (service *Service) CreateSession() (string, filter.Snapshot) {
	id, store := service.sessions.Create()
	return id, store.Snapshot()
}

// GetSnapshot returns the current filter state of a session.
func (service *Service) GetSnapshot(sessionID string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	return store.Snapshot(), nil
}

// CloseSession discards a session (the client left the search page).
func (service *Service) CloseSession(sessionID string) error {
	if _, err := service.sessions.Get(sessionID); err != nil {
		return err
	}
	service.sessions.Delete(sessionID)
	return nil
}

// # Filter Mutations
//
// Every mutation resolves the session, validates enum input against the
// closed vocabularies, applies the operation, and returns the new snapshot.

func (service *Service) AddSelection(sessionID string, category filter.Category, value string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	if !category.IsValid() {
		return filter.Snapshot{}, apperr.ValidationError("Unknown selection category: " + string(category))
	}
	if value == "" {
		return filter.Snapshot{}, apperr.ValidationError("Selection value must not be empty")
	}

	store.AddSelection(category, value)
	return store.Snapshot(), nil
}

func (service *Service) RemoveSelection(sessionID string, category filter.Category, value string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	if !category.IsValid() {
		return filter.Snapshot{}, apperr.ValidationError("Unknown selection category: " + string(category))
	}

	store.RemoveSelection(category, value)
	return store.Snapshot(), nil
}

// ToggleTag cycles a tag through neither → included → excluded → neither and
// returns the state it landed in.
func (service *Service) ToggleTag(sessionID, slug string) (filter.TagState, filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.TagNeither, filter.Snapshot{}, err
	}

	state := store.ToggleTag(slug)
	return state, store.Snapshot(), nil
}

// SetBoundValue stores raw numeric input for a criterion. Input is coerced,
// never rejected: empty, unparseable, or negative input becomes 0.
func (service *Service) SetBoundValue(sessionID string, criterion filter.Criterion, raw string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	if !criterion.IsValid() {
		return filter.Snapshot{}, apperr.ValidationError("Unknown bound criterion: " + string(criterion))
	}

	store.SetBoundValue(criterion, raw)
	return store.Snapshot(), nil
}

func (service *Service) ToggleBoundMode(sessionID string, criterion filter.Criterion) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	if !criterion.IsValid() {
		return filter.Snapshot{}, apperr.ValidationError("Unknown bound criterion: " + string(criterion))
	}

	store.ToggleBoundMode(criterion)
	return store.Snapshot(), nil
}

func (service *Service) SetSort(sessionID string, key filter.SortKey) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}
	if !key.IsValid() {
		return filter.Snapshot{}, apperr.ValidationError("Unknown sort key: " + string(key))
	}

	store.SetSort(key)
	return store.Snapshot(), nil
}

// SetReleaseDate sets or clears one end of the release-date range.
//
// bound is "oldest" or "latest"; raw is a YYYY-MM-DD date or the empty string
// to clear. A bound that would cross the opposite end is rejected with an
// unprocessable error and leaves the state untouched.
func (service *Service) SetReleaseDate(sessionID, bound, raw string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}

	var date *time.Time
	if raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			return filter.Snapshot{}, apperr.ValidationError("Invalid date, expected YYYY-MM-DD: " + raw)
		}
		date = &parsed
	}

	var ok bool
	switch bound {
	case "oldest":
		ok = store.SetOldestRelease(date)
	case "latest":
		ok = store.SetLatestRelease(date)
	default:
		return filter.Snapshot{}, apperr.ValidationError("Unknown date bound: " + bound)
	}

	if !ok {
		return filter.Snapshot{}, apperr.Unprocessable("Release-date bounds must not cross")
	}
	return store.Snapshot(), nil
}

// Reset restores every filter axis to its default in one step.
func (service *Service) Reset(sessionID string) (filter.Snapshot, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return filter.Snapshot{}, err
	}

	store.Reset()
	return store.Snapshot(), nil
}

// # Query Execution

// Search runs the session's current filter state against the catalog.
func (service *Service) Search(context context.Context, sessionID string, limit, offset int) ([]Result, int, error) {
	store, err := service.sessions.Get(sessionID)
	if err != nil {
		return nil, 0, err
	}

	snap := store.Snapshot()
	results, total, err := service.repo.Search(context, snap, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	service.logger.DebugContext(context, "search_executed",
		slog.String("session_id", sessionID),
		slog.Int("total", total),
		slog.String("sort", string(snap.Sort)),
	)

	return results, total, nil
}
