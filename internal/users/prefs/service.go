// Copyright (c) 2026 WebNDB. All rights reserved.

package prefs

import (
	"context"
	"log/slog"

	"github.com/webndb/webndb/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetPreferences returns the client's stored preferences, falling back to
// defaults for anything unset.
func (service *Service) GetPreferences(context context.Context, clientID string) (Preferences, error) {
	return service.repo.Get(context, clientID)
}

// SavePreferences validates both settings against their closed vocabularies
// and persists them.
func (service *Service) SavePreferences(context context.Context, clientID string, preferences Preferences) (Preferences, error) {
	if !preferences.ViewMode.IsValid() {
		return Preferences{}, apperr.ValidationError("Unknown view mode: " + string(preferences.ViewMode))
	}
	if !preferences.Theme.IsValid() {
		return Preferences{}, apperr.ValidationError("Unknown theme: " + string(preferences.Theme))
	}

	if err := service.repo.Set(context, clientID, preferences); err != nil {
		return Preferences{}, apperr.Internal(err)
	}

	service.logger.DebugContext(context, "preferences_saved",
		slog.String("view_mode", string(preferences.ViewMode)),
		slog.String("theme", string(preferences.Theme)),
	)

	return preferences, nil
}
