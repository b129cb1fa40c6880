// Copyright (c) 2026 WebNDB. All rights reserved.

/*
Package prefs persists lightweight display preferences for anonymous clients.

Unlike the search filter state, which is deliberately page-scoped, view mode
and theme survive across visits. They are keyed by the anonymous client ID
cookie and stored in Redis — losing them is harmless, so volatile storage
with a long TTL is the right durability class.
*/
package prefs

// ViewMode controls how the results list is rendered.
type ViewMode string

const (
	ViewCompact ViewMode = "compact"
	ViewCard    ViewMode = "card"
	ViewGrid    ViewMode = "grid"
)

// DefaultViewMode is used for clients with no stored preference.
const DefaultViewMode = ViewCard

// IsValid reports whether the view mode is a member of the closed set.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewCompact, ViewCard, ViewGrid:
		return true
	}
	return false
}

// Theme selects the color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
	ThemeCustom Theme = "custom"
)

// DefaultTheme is used for clients with no stored preference.
const DefaultTheme = ThemeSystem

// IsValid reports whether the theme is a member of the closed set.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem, ThemeCustom:
		return true
	}
	return false
}

// Preferences is the full set of persisted display settings for one client.
type Preferences struct {
	ViewMode ViewMode `json:"view_mode"`
	Theme    Theme    `json:"theme"`
}

// Defaults returns the preferences applied to a client that never saved any.
func Defaults() Preferences {
	return Preferences{ViewMode: DefaultViewMode, Theme: DefaultTheme}
}
