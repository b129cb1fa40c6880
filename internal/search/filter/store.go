// Copyright (c) 2026 WebNDB. All rights reserved.

package filter

import (
	"sort"
	"strconv"
	"sync"
	"time"
)

// Snapshot is an immutable copy of the full filter state.
//
// All slices and maps are owned by the snapshot; mutating them never
// affects the store. Tag slugs are sorted for deterministic output.
type Snapshot struct {
	// Selections maps every selection category to its current values,
	// in insertion order.
	Selections map[Category][]string `json:"selections"`

	// Included and Excluded are the two disjoint tag sets.
	Included []string `json:"included_tags"`
	Excluded []string `json:"excluded_tags"`

	// Bounds holds the numeric threshold for every criterion.
	Bounds map[Criterion]Bound `json:"bounds"`

	// Sort is the single active result ordering.
	Sort SortKey `json:"sort"`

	// OldestRelease and LatestRelease bound the release-date range.
	// A nil pointer means the bound is not set.
	OldestRelease *time.Time `json:"oldest_release,omitempty"`
	LatestRelease *time.Time `json:"latest_release,omitempty"`
}

// TagState returns the tri-state membership of a tag within the snapshot.
func (s Snapshot) TagState(slug string) TagState {
	for _, t := range s.Included {
		if t == slug {
			return TagIncluded
		}
	}
	for _, t := range s.Excluded {
		if t == slug {
			return TagExcluded
		}
	}
	return TagNeither
}

// Subscriber receives a snapshot after every state change.
type Subscriber func(Snapshot)

// Store owns the mutable search-filter state for one session.
//
// It is safe for concurrent use: every operation is atomic with respect to
// the others, and subscribers are notified outside the lock so they may
// call back into the store.
//
// Construct with [NewStore]; the zero value is not usable.
type Store struct {
	mu sync.Mutex

	selections map[Category][]string
	tags       map[string]TagState
	bounds     map[Criterion]Bound
	sortKey    SortKey
	oldest     *time.Time
	latest     *time.Time

	subsMu  sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// NewStore returns a store with every axis at its documented default:
// empty selections, empty tag sets, {min, 0} bounds, default sort, no dates.
func NewStore() *Store {
	s := &Store{
		subs: make(map[int]Subscriber),
	}
	s.resetLocked()
	return s
}

// resetLocked restores defaults. Callers must hold s.mu (or own the store
// exclusively, as in NewStore).
func (s *Store) resetLocked() {
	s.selections = make(map[Category][]string, len(Categories()))
	s.tags = make(map[string]TagState)
	s.bounds = make(map[Criterion]Bound, len(Criteria()))
	for _, c := range Criteria() {
		s.bounds[c] = Bound{Mode: BoundMin, Value: 0}
	}
	s.sortKey = DefaultSort
	s.oldest = nil
	s.latest = nil
}

// # Observation

// Subscribe registers a callback invoked with a fresh snapshot after every
// successful state change. The returned function removes the subscription.
//
// Delivery happens outside the store lock so callbacks may re-enter the
// store. Under concurrent mutations of the same store, snapshots can
// therefore arrive out of order; each snapshot is internally consistent,
// and the store itself always settles on the latest state. Observers that
// need ordering must read [Store.Snapshot] instead of trusting the last
// delivery.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// Snapshot returns an immutable copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Selections: make(map[Category][]string, len(s.selections)),
		Bounds:     make(map[Criterion]Bound, len(s.bounds)),
		Sort:       s.sortKey,
	}

	for category, values := range s.selections {
		snap.Selections[category] = append([]string(nil), values...)
	}

	for slug, state := range s.tags {
		switch state {
		case TagIncluded:
			snap.Included = append(snap.Included, slug)
		case TagExcluded:
			snap.Excluded = append(snap.Excluded, slug)
		}
	}
	sort.Strings(snap.Included)
	sort.Strings(snap.Excluded)

	for criterion, bound := range s.bounds {
		snap.Bounds[criterion] = bound
	}

	if s.oldest != nil {
		t := *s.oldest
		snap.OldestRelease = &t
	}
	if s.latest != nil {
		t := *s.latest
		snap.LatestRelease = &t
	}

	return snap
}

// notify delivers the snapshot to all subscribers. Called after s.mu has
// been released so a subscriber may re-enter the store.
func (s *Store) notify(snap Snapshot) {
	s.subsMu.Lock()
	subscribers := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subscribers = append(subscribers, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

// # Selection Lists

// AddSelection inserts value into the category's list if not already present.
// Duplicate inserts are no-ops; insertion order is preserved.
func (s *Store) AddSelection(category Category, value string) {
	s.mu.Lock()
	for _, existing := range s.selections[category] {
		if existing == value {
			s.mu.Unlock()
			return
		}
	}
	s.selections[category] = append(s.selections[category], value)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// RemoveSelection removes value from the category's list. Removing an
// absent value is a no-op.
func (s *Store) RemoveSelection(category Category, value string) {
	s.mu.Lock()
	values := s.selections[category]
	found := false
	for i, existing := range values {
		if existing == value {
			s.selections[category] = append(values[:i], values[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// # Tag Tri-State

// ToggleTag advances the tag one step through the tri-state cycle and
// returns the new state. A tag is never in both sets: the transition
// included → excluded moves it atomically.
func (s *Store) ToggleTag(slug string) TagState {
	s.mu.Lock()
	next := s.tags[slug].Next()
	if next == TagNeither {
		delete(s.tags, slug)
	} else {
		s.tags[slug] = next
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return next
}

// # Numeric Bounds

// SetBoundValue stores the numeric value for one criterion, preserving its
// current bound mode.
//
// Input follows the search form's conventions: the empty string means 0,
// unparseable input means 0, and negative values clamp to 0. The operation
// is total and never fails.
func (s *Store) SetBoundValue(criterion Criterion, raw string) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		value = 0
	}

	s.mu.Lock()
	bound := s.bounds[criterion]
	bound.Value = value
	s.bounds[criterion] = bound
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ToggleBoundMode flips the criterion between min and max, leaving the
// numeric value unchanged, and returns the new mode.
func (s *Store) ToggleBoundMode(criterion Criterion) BoundMode {
	s.mu.Lock()
	bound := s.bounds[criterion]
	bound.Mode = bound.Mode.Toggle()
	s.bounds[criterion] = bound
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return bound.Mode
}

// # Sort Order

// SetSort replaces the active sort key. Overwrite semantics, always succeeds.
func (s *Store) SetSort(key SortKey) {
	s.mu.Lock()
	s.sortKey = key
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// # Release-Date Range

// SetOldestRelease sets the lower release-date bound.
//
// It fails (returns false, state unchanged) when a latest bound is set and
// date is strictly after it. A nil date clears the bound and always succeeds.
func (s *Store) SetOldestRelease(date *time.Time) bool {
	s.mu.Lock()
	if date != nil && s.latest != nil && date.After(*s.latest) {
		s.mu.Unlock()
		return false
	}
	s.oldest = copyTime(date)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// SetLatestRelease sets the upper release-date bound.
//
// Symmetric to [Store.SetOldestRelease]: fails when an oldest bound is set
// and date is strictly before it.
func (s *Store) SetLatestRelease(date *time.Time) bool {
	s.mu.Lock()
	if date != nil && s.oldest != nil && date.Before(*s.oldest) {
		s.mu.Unlock()
		return false
	}
	s.latest = copyTime(date)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// # Reset

// Reset restores every axis to its default value in one atomic step.
func (s *Store) Reset() {
	s.mu.Lock()
	s.resetLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
