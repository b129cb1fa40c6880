// Copyright (c) 2026 WebNDB. All rights reserved.

package prefs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/internal/users/prefs"
)

// stubRepository keeps preferences in a map keyed by client ID.
type stubRepository struct {
	saved map[string]prefs.Preferences
}

func (stub *stubRepository) Get(_ context.Context, clientID string) (prefs.Preferences, error) {
	if preferences, ok := stub.saved[clientID]; ok {
		return preferences, nil
	}
	return prefs.Defaults(), nil
}

func (stub *stubRepository) Set(_ context.Context, clientID string, preferences prefs.Preferences) error {
	if stub.saved == nil {
		stub.saved = make(map[string]prefs.Preferences)
	}
	stub.saved[clientID] = preferences
	return nil
}

func newTestService() *prefs.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return prefs.NewService(&stubRepository{}, logger)
}

/*
TestService_Defaults verifies that a client with no stored preferences gets
the documented defaults.
*/
func TestService_Defaults(t *testing.T) {
	service := newTestService()

	preferences, err := service.GetPreferences(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, prefs.ViewCard, preferences.ViewMode)
	assert.Equal(t, prefs.ThemeSystem, preferences.Theme)
}

/*
TestService_SaveAndLoad verifies the write-then-read round trip per client.
*/
func TestService_SaveAndLoad(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.SavePreferences(ctx, "client-1", prefs.Preferences{
		ViewMode: prefs.ViewGrid,
		Theme:    prefs.ThemeDark,
	})
	require.NoError(t, err)

	// 1. The saving client sees its own values
	preferences, err := service.GetPreferences(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, prefs.ViewGrid, preferences.ViewMode)
	assert.Equal(t, prefs.ThemeDark, preferences.Theme)

	// 2. Other clients are unaffected
	preferences, err = service.GetPreferences(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, prefs.Defaults(), preferences)
}

/*
TestService_SaveValidation verifies that values outside the closed
vocabularies are rejected.
*/
func TestService_SaveValidation(t *testing.T) {
	service := newTestService()

	testCases := []struct {
		name        string
		preferences prefs.Preferences
	}{
		{"unknown view mode", prefs.Preferences{ViewMode: "table", Theme: prefs.ThemeLight}},
		{"unknown theme", prefs.Preferences{ViewMode: prefs.ViewCard, Theme: "sepia"}},
		{"empty values", prefs.Preferences{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.SavePreferences(context.Background(), "client-1", testCase.preferences)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.As(err).HTTPStatus)
		})
	}
}
