// Copyright (c) 2026 WebNDB. All rights reserved.

package prefs

import "context"

// Repository stores preferences per anonymous client ID.
type Repository interface {
	Get(context context.Context, clientID string) (Preferences, error)
	Set(context context.Context, clientID string, preferences Preferences) error
}
