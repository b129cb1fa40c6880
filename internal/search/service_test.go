// Copyright (c) 2026 WebNDB. All rights reserved.

package search_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/internal/search"
	"github.com/webndb/webndb/internal/search/filter"
)

// stubRepository records the snapshot it was asked to execute.
type stubRepository struct {
	lastSnapshot filter.Snapshot
	results      []search.Result
	total        int
}

func (stub *stubRepository) Search(_ context.Context, snap filter.Snapshot, _, _ int) ([]search.Result, int, error) {
	stub.lastSnapshot = snap
	return stub.results, stub.total, nil
}

func newTestService(t *testing.T) (*search.Service, *stubRepository) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stub := &stubRepository{}

	return search.NewService(search.NewSessions(ctx, logger), stub, logger), stub
}

/*
TestService_SessionLifecycle verifies create, read, and close against the
registry, including the not-found error for closed sessions.
*/
func TestService_SessionLifecycle(t *testing.T) {
	service, _ := newTestService(t)

	// 1. A fresh session starts at the documented defaults
	id, snap := service.CreateSession()
	require.NotEmpty(t, id)
	assert.Equal(t, filter.DefaultSort, snap.Sort)
	assert.Empty(t, snap.Included)

	// 2. Snapshot retrieval works while the session is live
	_, err := service.GetSnapshot(id)
	require.NoError(t, err)

	// 3. After closing, every access is a 404
	require.NoError(t, service.CloseSession(id))
	_, err = service.GetSnapshot(id)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

/*
TestService_AddSelection_Validation verifies that only the closed category
vocabulary is accepted.
*/
func TestService_AddSelection_Validation(t *testing.T) {
	service, _ := newTestService(t)
	id, _ := service.CreateSession()

	testCases := []struct {
		name     string
		category filter.Category
		value    string
		wantErr  bool
	}{
		{"valid category", filter.CategoryPublisher, "Yen Press", false},
		{"unknown category", filter.Category("genre"), "fantasy", true},
		{"empty value", filter.CategoryPublisher, "", true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			snap, err := service.AddSelection(id, testCase.category, testCase.value)

			if testCase.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, apperr.As(err).HTTPStatus)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, snap.Selections[testCase.category], testCase.value)
		})
	}
}

/*
TestService_ToggleTag verifies the tri-state cycle through the service layer.
*/
func TestService_ToggleTag(t *testing.T) {
	service, _ := newTestService(t)
	id, _ := service.CreateSession()

	state, snap, err := service.ToggleTag(id, "isekai")
	require.NoError(t, err)
	assert.Equal(t, filter.TagIncluded, state)
	assert.Equal(t, []string{"isekai"}, snap.Included)

	state, snap, err = service.ToggleTag(id, "isekai")
	require.NoError(t, err)
	assert.Equal(t, filter.TagExcluded, state)
	assert.Empty(t, snap.Included)
	assert.Equal(t, []string{"isekai"}, snap.Excluded)
}

/*
TestService_SetReleaseDate verifies parsing, ordering rejection, and clearing.
*/
func TestService_SetReleaseDate(t *testing.T) {
	service, _ := newTestService(t)
	id, _ := service.CreateSession()

	// 1. Valid bound
	snap, err := service.SetReleaseDate(id, "oldest", "2024-01-10")
	require.NoError(t, err)
	require.NotNil(t, snap.OldestRelease)

	// 2. A latest bound before the oldest is unprocessable, state unchanged
	_, err = service.SetReleaseDate(id, "latest", "2024-01-05")
	require.Error(t, err)
	assert.Equal(t, 422, apperr.As(err).HTTPStatus)

	snap, err = service.GetSnapshot(id)
	require.NoError(t, err)
	assert.Nil(t, snap.LatestRelease)

	// 3. Garbage dates and unknown bounds are validation errors
	_, err = service.SetReleaseDate(id, "oldest", "January 10")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.As(err).HTTPStatus)

	_, err = service.SetReleaseDate(id, "middle", "2024-01-10")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.As(err).HTTPStatus)

	// 4. Empty date clears the bound
	snap, err = service.SetReleaseDate(id, "oldest", "")
	require.NoError(t, err)
	assert.Nil(t, snap.OldestRelease)
}

/*
TestService_Search verifies that query execution sees the session's current
filter state.
*/
func TestService_Search(t *testing.T) {
	service, stub := newTestService(t)
	id, _ := service.CreateSession()

	_, err := service.SetSort(id, filter.SortRating)
	require.NoError(t, err)
	_, _, err = service.ToggleTag(id, "action")
	require.NoError(t, err)

	stub.results = []search.Result{{NovelID: 7, Title: "Ascendance"}}
	stub.total = 1

	results, total, err := service.Search(context.Background(), id, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)

	// The repository received the live snapshot, not a stale default.
	assert.Equal(t, filter.SortRating, stub.lastSnapshot.Sort)
	assert.Equal(t, []string{"action"}, stub.lastSnapshot.Included)
}
