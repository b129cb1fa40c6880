// Copyright (c) 2026 WebNDB. All rights reserved.

package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/search/filter"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

/*
TestStore_Defaults verifies that a fresh store exposes the documented
default state on every axis.
*/
func TestStore_Defaults(t *testing.T) {
	snap := filter.NewStore().Snapshot()

	assert.Empty(t, snap.Selections)
	assert.Empty(t, snap.Included)
	assert.Empty(t, snap.Excluded)
	assert.Equal(t, filter.DefaultSort, snap.Sort)
	assert.Nil(t, snap.OldestRelease)
	assert.Nil(t, snap.LatestRelease)

	require.Len(t, snap.Bounds, len(filter.Criteria()))
	for _, criterion := range filter.Criteria() {
		bound, ok := snap.Bounds[criterion]
		require.True(t, ok, "missing bound for %s", criterion)
		assert.Equal(t, filter.BoundMin, bound.Mode)
		assert.Zero(t, bound.Value)
	}
}

/*
TestStore_AddSelection_Idempotent checks that inserting the same value
twice yields the same list as inserting it once.
*/
func TestStore_AddSelection_Idempotent(t *testing.T) {
	store := filter.NewStore()

	store.AddSelection(filter.CategoryPublisher, "Shousetsuka ni Narou")
	store.AddSelection(filter.CategoryPublisher, "Kakuyomu")
	store.AddSelection(filter.CategoryPublisher, "Shousetsuka ni Narou")

	snap := store.Snapshot()
	assert.Equal(t,
		[]string{"Shousetsuka ni Narou", "Kakuyomu"},
		snap.Selections[filter.CategoryPublisher],
	)
}

/*
TestStore_RemoveSelection verifies that remove-after-add restores the
pre-add state and that removing an absent value is a no-op.
*/
func TestStore_RemoveSelection(t *testing.T) {
	store := filter.NewStore()

	store.AddSelection(filter.CategoryOriginalLanguage, "ko")
	store.AddSelection(filter.CategoryOriginalLanguage, "ja")
	store.RemoveSelection(filter.CategoryOriginalLanguage, "ja")

	snap := store.Snapshot()
	assert.Equal(t, []string{"ko"}, snap.Selections[filter.CategoryOriginalLanguage])

	// Removing something that was never added changes nothing.
	store.RemoveSelection(filter.CategoryOriginalLanguage, "zh-Hans")
	store.RemoveSelection(filter.CategoryStaff, "nobody")

	snap = store.Snapshot()
	assert.Equal(t, []string{"ko"}, snap.Selections[filter.CategoryOriginalLanguage])
	assert.Empty(t, snap.Selections[filter.CategoryStaff])
}

/*
TestStore_ToggleTag_Cycle walks one tag through the full tri-state cycle:
neither → included → excluded → neither.
*/
func TestStore_ToggleTag_Cycle(t *testing.T) {
	store := filter.NewStore()

	state := store.ToggleTag("action")
	assert.Equal(t, filter.TagIncluded, state)
	snap := store.Snapshot()
	assert.Equal(t, []string{"action"}, snap.Included)
	assert.Empty(t, snap.Excluded)

	state = store.ToggleTag("action")
	assert.Equal(t, filter.TagExcluded, state)
	snap = store.Snapshot()
	assert.Empty(t, snap.Included)
	assert.Equal(t, []string{"action"}, snap.Excluded)

	state = store.ToggleTag("action")
	assert.Equal(t, filter.TagNeither, state)
	snap = store.Snapshot()
	assert.Empty(t, snap.Included)
	assert.Empty(t, snap.Excluded)
}

/*
TestStore_ToggleTag_Independent confirms tags cycle independently and the
included/excluded sets stay disjoint.
*/
func TestStore_ToggleTag_Independent(t *testing.T) {
	store := filter.NewStore()

	store.ToggleTag("isekai")  // included
	store.ToggleTag("tragedy") // included
	store.ToggleTag("tragedy") // excluded

	snap := store.Snapshot()
	assert.Equal(t, []string{"isekai"}, snap.Included)
	assert.Equal(t, []string{"tragedy"}, snap.Excluded)

	assert.Equal(t, filter.TagIncluded, snap.TagState("isekai"))
	assert.Equal(t, filter.TagExcluded, snap.TagState("tragedy"))
	assert.Equal(t, filter.TagNeither, snap.TagState("romance"))
}

/*
TestStore_SetBoundValue covers the input coercion rules: empty string,
unparseable input, and negative values all store zero.
*/
func TestStore_SetBoundValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value float64
	}{
		{"plain_integer", "120", 120},
		{"decimal", "4.5", 4.5},
		{"empty_string", "", 0},
		{"negative", "-5", 0},
		{"garbage", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := filter.NewStore()
			store.SetBoundValue(filter.CriterionRating, tt.raw)

			bound := store.Snapshot().Bounds[filter.CriterionRating]
			assert.Equal(t, tt.value, bound.Value)
			assert.Equal(t, filter.BoundMin, bound.Mode)
		})
	}
}

/*
TestStore_ToggleBoundMode verifies the binary min/max flip leaves the
stored value untouched and does not affect other criteria.
*/
func TestStore_ToggleBoundMode(t *testing.T) {
	store := filter.NewStore()
	store.SetBoundValue(filter.CriterionChapters, "50")

	mode := store.ToggleBoundMode(filter.CriterionChapters)
	assert.Equal(t, filter.BoundMax, mode)

	snap := store.Snapshot()
	assert.Equal(t, filter.Bound{Mode: filter.BoundMax, Value: 50}, snap.Bounds[filter.CriterionChapters])
	assert.Equal(t, filter.BoundMin, snap.Bounds[filter.CriterionReaders].Mode)

	mode = store.ToggleBoundMode(filter.CriterionChapters)
	assert.Equal(t, filter.BoundMin, mode)
	assert.Equal(t, float64(50), store.Snapshot().Bounds[filter.CriterionChapters].Value)
}

/*
TestStore_SetSort checks overwrite semantics for the single sort key.
*/
func TestStore_SetSort(t *testing.T) {
	store := filter.NewStore()

	store.SetSort(filter.SortRating)
	assert.Equal(t, filter.SortRating, store.Snapshot().Sort)

	store.SetSort(filter.SortNewest)
	assert.Equal(t, filter.SortNewest, store.Snapshot().Sort)
}

/*
TestStore_ReleaseDates covers the only fallible operations: the ordered
release-date pair.
*/
func TestStore_ReleaseDates(t *testing.T) {
	t.Run("latest_before_oldest_rejected", func(t *testing.T) {
		store := filter.NewStore()
		require.True(t, store.SetOldestRelease(date(2024, time.January, 10)))

		// Rejected: strictly before the oldest bound; state unchanged.
		assert.False(t, store.SetLatestRelease(date(2024, time.January, 5)))
		assert.Nil(t, store.Snapshot().LatestRelease)

		// A later date succeeds.
		assert.True(t, store.SetLatestRelease(date(2024, time.February, 1)))
		snap := store.Snapshot()
		require.NotNil(t, snap.LatestRelease)
		assert.Equal(t, *date(2024, time.February, 1), *snap.LatestRelease)
	})

	t.Run("oldest_after_latest_rejected", func(t *testing.T) {
		store := filter.NewStore()
		require.True(t, store.SetLatestRelease(date(2024, time.June, 1)))

		assert.False(t, store.SetOldestRelease(date(2024, time.July, 1)))
		assert.Nil(t, store.Snapshot().OldestRelease)
	})

	t.Run("equal_bounds_allowed", func(t *testing.T) {
		store := filter.NewStore()
		require.True(t, store.SetOldestRelease(date(2024, time.March, 15)))
		assert.True(t, store.SetLatestRelease(date(2024, time.March, 15)))
	})

	t.Run("nil_clears_and_always_succeeds", func(t *testing.T) {
		store := filter.NewStore()
		require.True(t, store.SetOldestRelease(date(2024, time.January, 10)))
		require.True(t, store.SetLatestRelease(date(2024, time.February, 1)))

		assert.True(t, store.SetLatestRelease(nil))
		assert.Nil(t, store.Snapshot().LatestRelease)

		// With the latest bound cleared, any oldest date is acceptable.
		assert.True(t, store.SetOldestRelease(date(2030, time.January, 1)))
	})
}

/*
TestStore_Reset piles state onto every axis and verifies a single Reset
restores the documented defaults.
*/
func TestStore_Reset(t *testing.T) {
	store := filter.NewStore()

	store.AddSelection(filter.CategoryStatus, "ongoing")
	store.AddSelection(filter.CategoryStaff, "Kumo Kagyu")
	store.ToggleTag("action")
	store.ToggleTag("harem")
	store.ToggleTag("harem")
	store.SetBoundValue(filter.CriterionReviews, "3")
	store.ToggleBoundMode(filter.CriterionReviews)
	store.SetSort(filter.SortReaders)
	store.SetOldestRelease(date(2020, time.January, 1))
	store.SetLatestRelease(date(2024, time.January, 1))

	store.Reset()

	snap := store.Snapshot()
	assert.Empty(t, snap.Selections)
	assert.Empty(t, snap.Included)
	assert.Empty(t, snap.Excluded)
	assert.Equal(t, filter.DefaultSort, snap.Sort)
	assert.Nil(t, snap.OldestRelease)
	assert.Nil(t, snap.LatestRelease)
	for _, criterion := range filter.Criteria() {
		assert.Equal(t, filter.Bound{Mode: filter.BoundMin, Value: 0}, snap.Bounds[criterion])
	}
}

/*
TestStore_Subscribe verifies observers receive a snapshot per successful
mutation, that no-op mutations stay silent, and that unsubscribe works.
*/
func TestStore_Subscribe(t *testing.T) {
	store := filter.NewStore()

	var received []filter.Snapshot
	unsubscribe := store.Subscribe(func(snap filter.Snapshot) {
		received = append(received, snap)
	})

	store.AddSelection(filter.CategoryPublisher, "J-Novel Club")
	store.AddSelection(filter.CategoryPublisher, "J-Novel Club") // duplicate: silent
	store.RemoveSelection(filter.CategoryStaff, "absent")        // no-op: silent
	store.ToggleTag("action")

	require.Len(t, received, 2)
	assert.Equal(t, []string{"J-Novel Club"}, received[0].Selections[filter.CategoryPublisher])
	assert.Equal(t, []string{"action"}, received[1].Included)

	// A rejected date mutation leaves state unchanged and notifies nobody.
	require.True(t, store.SetOldestRelease(date(2024, time.January, 10)))
	assert.False(t, store.SetLatestRelease(date(2023, time.January, 1)))
	assert.Len(t, received, 3)

	unsubscribe()
	store.SetSort(filter.SortTitle)
	assert.Len(t, received, 3)
}

/*
TestStore_SnapshotIsolation mutates a returned snapshot and confirms the
store's state is unaffected.
*/
func TestStore_SnapshotIsolation(t *testing.T) {
	store := filter.NewStore()
	store.AddSelection(filter.CategoryStatus, "completed")

	snap := store.Snapshot()
	snap.Selections[filter.CategoryStatus][0] = "mutated"
	snap.Bounds[filter.CriterionRating] = filter.Bound{Mode: filter.BoundMax, Value: 99}

	fresh := store.Snapshot()
	assert.Equal(t, []string{"completed"}, fresh.Selections[filter.CategoryStatus])
	assert.Equal(t, filter.Bound{Mode: filter.BoundMin, Value: 0}, fresh.Bounds[filter.CriterionRating])
}
