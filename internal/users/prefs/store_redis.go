// Copyright (c) 2026 WebNDB. All rights reserved.

package prefs

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/webndb/webndb/internal/platform/constants"
)

// prefsTTL bounds how long an inactive client's preferences are kept.
// Refreshed on every write.
const prefsTTL = 180 * 24 * time.Hour

// RedisRepository keeps each preference under its own key so a future
// setting never forces a migration of existing values.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Get loads the client's preferences, substituting the default for any
// setting that is missing or no longer a member of its vocabulary.
func (repository *RedisRepository) Get(context stdctx.Context, clientID string) (Preferences, error) {
	preferences := Defaults()

	viewMode, err := repository.client.Get(context, constants.RedisPrefixViewMode+clientID).Result()
	switch {
	case err == nil:
		if m := ViewMode(viewMode); m.IsValid() {
			preferences.ViewMode = m
		}
	case !errors.Is(err, redis.Nil):
		return preferences, fmt.Errorf("prefs: load view mode: %w", err)
	}

	theme, err := repository.client.Get(context, constants.RedisPrefixTheme+clientID).Result()
	switch {
	case err == nil:
		if t := Theme(theme); t.IsValid() {
			preferences.Theme = t
		}
	case !errors.Is(err, redis.Nil):
		return preferences, fmt.Errorf("prefs: load theme: %w", err)
	}

	return preferences, nil
}

// Set writes both preferences atomically via a pipeline.
func (repository *RedisRepository) Set(context stdctx.Context, clientID string, preferences Preferences) error {
	pipeline := repository.client.TxPipeline()
	pipeline.Set(context, constants.RedisPrefixViewMode+clientID, string(preferences.ViewMode), prefsTTL)
	pipeline.Set(context, constants.RedisPrefixTheme+clientID, string(preferences.Theme), prefsTTL)

	if _, err := pipeline.Exec(context); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}
