// Copyright (c) 2026 WebNDB. All rights reserved.

/*
Package filter holds the shared search-filter state for one browsing session.

Every axis of the novel search form (languages, publishers, staff, tags,
statuses, numeric bounds, sort order, release dates) lives in a single
[Store]. Handlers mutate the store through its typed operations; readers
(the query builder, the search form) observe the same state and receive an
immutable [Snapshot] after every change.

All vocabularies are closed enumerations, so an invalid category or
criterion is a compile-time concern, not a runtime lookup failure.
*/
package filter

// # Selection Categories

// Category identifies one of the list-valued selection axes of the search form.
type Category string

const (
	// CategoryOriginalLanguage filters by the language a novel was written in.
	CategoryOriginalLanguage Category = "original_language"
	// CategoryAvailableLanguage filters by languages a novel has releases in.
	CategoryAvailableLanguage Category = "available_language"
	// CategoryPublisher filters by free-text publisher names.
	CategoryPublisher Category = "publisher"
	// CategoryStaff filters by free-text staff names (authors, translators, editors).
	CategoryStaff Category = "staff"
	// CategoryStatus filters by publication status.
	CategoryStatus Category = "status"
)

// Categories returns all selection categories in display order.
func Categories() []Category {
	return []Category{
		CategoryOriginalLanguage,
		CategoryAvailableLanguage,
		CategoryPublisher,
		CategoryStaff,
		CategoryStatus,
	}
}

// IsValid reports whether the category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryOriginalLanguage, CategoryAvailableLanguage,
		CategoryPublisher, CategoryStaff, CategoryStatus:
		return true
	}
	return false
}

// # Tag Tri-State

// TagState is the membership of a tag in the current query.
//
// Each tag cycles independently: neither → included → excluded → neither.
type TagState uint8

const (
	// TagNeither means the tag does not constrain the query.
	TagNeither TagState = iota
	// TagIncluded means matching novels must carry the tag.
	TagIncluded
	// TagExcluded means matching novels must not carry the tag.
	TagExcluded
)

// Next returns the state a toggle transitions into.
func (s TagState) Next() TagState {
	switch s {
	case TagNeither:
		return TagIncluded
	case TagIncluded:
		return TagExcluded
	default:
		return TagNeither
	}
}

// String returns the wire representation used in snapshots and responses.
func (s TagState) String() string {
	switch s {
	case TagIncluded:
		return "included"
	case TagExcluded:
		return "excluded"
	default:
		return "neither"
	}
}

// # Numeric Bound Criteria

// Criterion identifies one numeric min/max axis of the search form.
type Criterion string

const (
	CriterionChapters    Criterion = "chapters"
	CriterionReaders     Criterion = "readers"
	CriterionRating      Criterion = "rating"
	CriterionRatingCount Criterion = "rating_count"
	CriterionReviews     Criterion = "reviews"
)

// Criteria returns all numeric criteria in display order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionChapters,
		CriterionReaders,
		CriterionRating,
		CriterionRatingCount,
		CriterionReviews,
	}
}

// IsValid reports whether the criterion is a member of the closed set.
func (c Criterion) IsValid() bool {
	switch c {
	case CriterionChapters, CriterionReaders, CriterionRating,
		CriterionRatingCount, CriterionReviews:
		return true
	}
	return false
}

// BoundMode selects whether a criterion's value is a lower or upper threshold.
type BoundMode string

const (
	// BoundMin interprets the value as a minimum (inclusive).
	BoundMin BoundMode = "min"
	// BoundMax interprets the value as a maximum (inclusive).
	BoundMax BoundMode = "max"
)

// Toggle returns the opposite bound mode.
func (m BoundMode) Toggle() BoundMode {
	if m == BoundMin {
		return BoundMax
	}
	return BoundMin
}

// Bound is the stored state of one numeric criterion.
//
// Exactly one mode is active at a time; Value is always >= 0.
type Bound struct {
	Mode  BoundMode `json:"mode"`
	Value float64   `json:"value"`
}

// # Sort Order

// SortKey identifies the single active result ordering.
type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortTitle       SortKey = "title"
	SortChapters    SortKey = "chapters"
	SortReaders     SortKey = "readers"
	SortRating      SortKey = "rating"
	SortRatingCount SortKey = "rating_count"
	SortReviews     SortKey = "reviews"
	SortNewest      SortKey = "newest"
	SortOldest      SortKey = "oldest"
)

// DefaultSort is the ordering applied to a fresh or reset store.
const DefaultSort = SortRelevance

// SortKeys returns all sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{
		SortRelevance,
		SortTitle,
		SortChapters,
		SortReaders,
		SortRating,
		SortRatingCount,
		SortReviews,
		SortNewest,
		SortOldest,
	}
}

// IsValid reports whether the sort key is a member of the closed set.
func (k SortKey) IsValid() bool {
	switch k {
	case SortRelevance, SortTitle, SortChapters, SortReaders, SortRating,
		SortRatingCount, SortReviews, SortNewest, SortOldest:
		return true
	}
	return false
}
