// Copyright (c) 2026 WebNDB. All rights reserved.

package search_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/search"
	"github.com/webndb/webndb/internal/search/filter"
)

/*
TestBuildQuery_Defaults verifies that an untouched filter state compiles to
an unconstrained query with the default ordering.
*/
func TestBuildQuery_Defaults(t *testing.T) {
	query := search.BuildQuery(filter.NewStore().Snapshot())

	assert.Equal(t, "TRUE", query.Where)
	assert.Equal(t, "ORDER BY n.novel_id DESC", query.OrderBy)
	assert.Empty(t, query.Args)
}

/*
TestBuildQuery_Selections verifies that each selection category produces its
own predicate with the values bound as arguments.
*/
func TestBuildQuery_Selections(t *testing.T) {
	store := filter.NewStore()
	store.AddSelection(filter.CategoryOriginalLanguage, "ja")
	store.AddSelection(filter.CategoryOriginalLanguage, "ko")
	store.AddSelection(filter.CategoryPublisher, "Seven Seas")
	store.AddSelection(filter.CategoryStatus, "completed")

	query := search.BuildQuery(store.Snapshot())

	// 1. One predicate per touched category
	assert.Contains(t, query.Where, "n.original_language = ANY($1)")
	assert.Contains(t, query.Where, "np.name = ANY($2)")
	assert.Contains(t, query.Where, "n.status = ANY($3)")

	// 2. Argument order follows the fixed category order
	require.Len(t, query.Args, 3)
	assert.Equal(t, []string{"ja", "ko"}, query.Args[0])
	assert.Equal(t, []string{"Seven Seas"}, query.Args[1])
	assert.Equal(t, []string{"completed"}, query.Args[2])
}

/*
TestBuildQuery_Tags verifies that included tags each require an EXISTS match
while excluded tags share one NOT EXISTS predicate.
*/
func TestBuildQuery_Tags(t *testing.T) {
	store := filter.NewStore()
	store.ToggleTag("action")   // included
	store.ToggleTag("isekai")   // included
	store.ToggleTag("tragedy")  // included
	store.ToggleTag("tragedy")  // excluded

	query := search.BuildQuery(store.Snapshot())

	assert.Equal(t, 2, strings.Count(query.Where, "EXISTS (")-strings.Count(query.Where, "NOT EXISTS ("))
	assert.Contains(t, query.Where, "NOT EXISTS (")
	require.Len(t, query.Args, 3)
	assert.Equal(t, "action", query.Args[0])
	assert.Equal(t, "isekai", query.Args[1])
	assert.Equal(t, []string{"tragedy"}, query.Args[2])
}

/*
TestBuildQuery_Bounds verifies bound compilation: min maps to >=, max to <=,
and zero-valued bounds are skipped entirely.
*/
func TestBuildQuery_Bounds(t *testing.T) {
	store := filter.NewStore()
	store.SetBoundValue(filter.CriterionChapters, "100")
	store.SetBoundValue(filter.CriterionRating, "4.5")
	store.ToggleBoundMode(filter.CriterionRating) // rating becomes a maximum

	query := search.BuildQuery(store.Snapshot())

	// 1. Touched bounds appear with the right operator
	assert.Contains(t, query.Where, "s.chapters >= $1")
	assert.Contains(t, query.Where, "s.rating <= $2")

	// 2. The three untouched zero bounds contribute nothing
	assert.NotContains(t, query.Where, "s.readers")
	assert.NotContains(t, query.Where, "s.rating_count")
	assert.NotContains(t, query.Where, "s.reviews")
	assert.Equal(t, []any{100.0, 4.5}, query.Args)
}

/*
TestBuildQuery_DateRange verifies that each set date bound constrains the
start release date.
*/
func TestBuildQuery_DateRange(t *testing.T) {
	oldest := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store := filter.NewStore()
	require.True(t, store.SetOldestRelease(&oldest))
	require.True(t, store.SetLatestRelease(&latest))

	query := search.BuildQuery(store.Snapshot())

	assert.Contains(t, query.Where, "n.start_release_date >= $1")
	assert.Contains(t, query.Where, "n.start_release_date <= $2")
	assert.Equal(t, []any{oldest, latest}, query.Args)
}

/*
TestBuildQuery_OrderBy verifies the ordering clause for every sort key, and
that every ordering carries a tiebreaker for stable pagination.
*/
func TestBuildQuery_OrderBy(t *testing.T) {
	testCases := []struct {
		key      filter.SortKey
		expected string
	}{
		{filter.SortRelevance, "ORDER BY n.novel_id DESC"},
		{filter.SortTitle, "ORDER BY main_title ASC, n.novel_id ASC"},
		{filter.SortChapters, "ORDER BY s.chapters DESC, n.novel_id ASC"},
		{filter.SortReaders, "ORDER BY s.readers DESC, n.novel_id ASC"},
		{filter.SortRating, "ORDER BY s.rating DESC, n.novel_id ASC"},
		{filter.SortRatingCount, "ORDER BY s.rating_count DESC, n.novel_id ASC"},
		{filter.SortReviews, "ORDER BY s.reviews DESC, n.novel_id ASC"},
		{filter.SortNewest, "ORDER BY n.start_release_date DESC NULLS LAST, n.novel_id ASC"},
		{filter.SortOldest, "ORDER BY n.start_release_date ASC NULLS LAST, n.novel_id ASC"},
	}

	for _, testCase := range testCases {
		t.Run(string(testCase.key), func(t *testing.T) {
			store := filter.NewStore()
			store.SetSort(testCase.key)

			query := search.BuildQuery(store.Snapshot())
			assert.Equal(t, testCase.expected, query.OrderBy)
			assert.Contains(t, query.OrderBy, "n.novel_id")
		})
	}
}

/*
TestBuildQuery_PlaceholderNumbering verifies that placeholders stay aligned
with the argument list when many axes are active at once.
*/
func TestBuildQuery_PlaceholderNumbering(t *testing.T) {
	oldest := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	store := filter.NewStore()
	store.AddSelection(filter.CategoryAvailableLanguage, "en")
	store.ToggleTag("fantasy")
	store.SetBoundValue(filter.CriterionReaders, "5000")
	require.True(t, store.SetOldestRelease(&oldest))

	query := search.BuildQuery(store.Snapshot())

	require.Len(t, query.Args, 4)
	assert.Contains(t, query.Where, "$1")
	assert.Contains(t, query.Where, "$2")
	assert.Contains(t, query.Where, "$3")
	assert.Contains(t, query.Where, "$4")
	assert.NotContains(t, query.Where, "$5")
}
