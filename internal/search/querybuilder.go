// Copyright (c) 2026 WebNDB. All rights reserved.

package search

import (
	"fmt"
	"strings"

	"github.com/webndb/webndb/internal/platform/database/schema"
	"github.com/webndb/webndb/internal/search/filter"
)

// Query is a compiled filter snapshot: a WHERE clause fragment, an ORDER BY
// clause, and the positional arguments backing both.
type Query struct {
	Where   string
	OrderBy string
	Args    []any
}

// builder accumulates WHERE predicates with correctly numbered placeholders.
type builder struct {
	predicates []string
	args       []any
}

// bind appends an argument and returns its placeholder ($1, $2, ...).
func (b *builder) bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *builder) where(predicate string) {
	b.predicates = append(b.predicates, predicate)
}

// BuildQuery translates a filter snapshot into SQL against the novel catalog.
//
// The translation is pure: no I/O, deterministic output for a given snapshot.
// Predicates are combined with AND; a zero-valued bound is vacuous and is
// skipped entirely, matching the search form's "0 means unset" convention.
func BuildQuery(snap filter.Snapshot) Query {
	b := &builder{}

	for _, category := range filter.Categories() {
		values := snap.Selections[category]
		if len(values) == 0 {
			continue
		}
		b.selection(category, values)
	}

	// Included tags: novel must carry every one.
	for _, slug := range snap.Included {
		b.where(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM novel_tag nt JOIN tag t ON t.id = nt.tag_id
			WHERE nt.novel_id = n.novel_id AND t.slug = %s)`, b.bind(slug)))
	}

	// Excluded tags: one predicate covers the whole set.
	if len(snap.Excluded) > 0 {
		b.where(fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM novel_tag nt JOIN tag t ON t.id = nt.tag_id
			WHERE nt.novel_id = n.novel_id AND t.slug = ANY(%s))`, b.bind(snap.Excluded)))
	}

	for _, criterion := range filter.Criteria() {
		bound, ok := snap.Bounds[criterion]
		if !ok || bound.Value == 0 {
			continue
		}

		operator := ">="
		if bound.Mode == filter.BoundMax {
			operator = "<="
		}
		b.where(fmt.Sprintf("s.%s %s %s", statsColumn(criterion), operator, b.bind(bound.Value)))
	}

	if snap.OldestRelease != nil {
		b.where(fmt.Sprintf("n.start_release_date >= %s", b.bind(*snap.OldestRelease)))
	}
	if snap.LatestRelease != nil {
		b.where(fmt.Sprintf("n.start_release_date <= %s", b.bind(*snap.LatestRelease)))
	}

	where := "TRUE"
	if len(b.predicates) > 0 {
		where = strings.Join(b.predicates, "\n  AND ")
	}

	return Query{
		Where:   where,
		OrderBy: orderBy(snap.Sort),
		Args:    b.args,
	}
}

// selection emits the predicate for one list-valued category.
func (b *builder) selection(category filter.Category, values []string) {
	switch category {
	case filter.CategoryOriginalLanguage:
		b.where(fmt.Sprintf("n.original_language = ANY(%s)", b.bind(values)))

	case filter.CategoryAvailableLanguage:
		b.where(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM release r
			WHERE r.novel_id = n.novel_id AND r.lang = ANY(%s))`, b.bind(values)))

	case filter.CategoryPublisher:
		b.where(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM novel_publisher np
			WHERE np.novel_id = n.novel_id AND np.name = ANY(%s))`, b.bind(values)))

	case filter.CategoryStaff:
		b.where(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM novel_staff ns
			WHERE ns.novel_id = n.novel_id AND ns.name = ANY(%s))`, b.bind(values)))

	case filter.CategoryStatus:
		b.where(fmt.Sprintf("n.status = ANY(%s)", b.bind(values)))
	}
}

// statsColumn maps a numeric criterion to its novel_stats column. The enum
// values are chosen to match the column names, so the mapping is the identity;
// the switch keeps the guarantee explicit should either side drift.
func statsColumn(criterion filter.Criterion) string {
	switch criterion {
	case filter.CriterionChapters:
		return schema.NovelStats.Chapters
	case filter.CriterionReaders:
		return schema.NovelStats.Readers
	case filter.CriterionRating:
		return schema.NovelStats.Rating
	case filter.CriterionRatingCount:
		return schema.NovelStats.RatingCount
	case filter.CriterionReviews:
		return schema.NovelStats.Reviews
	}
	return string(criterion)
}

// orderBy maps a sort key to its ORDER BY clause.
//
// Relevance has no text-score backing in SQL, so it falls back to recency of
// entry (newest novel first) as the stable default. All orderings end with
// novel_id so pagination never shuffles ties.
func orderBy(key filter.SortKey) string {
	switch key {
	case filter.SortTitle:
		return "ORDER BY main_title ASC, n.novel_id ASC"
	case filter.SortChapters:
		return "ORDER BY s.chapters DESC, n.novel_id ASC"
	case filter.SortReaders:
		return "ORDER BY s.readers DESC, n.novel_id ASC"
	case filter.SortRating:
		return "ORDER BY s.rating DESC, n.novel_id ASC"
	case filter.SortRatingCount:
		return "ORDER BY s.rating_count DESC, n.novel_id ASC"
	case filter.SortReviews:
		return "ORDER BY s.reviews DESC, n.novel_id ASC"
	case filter.SortNewest:
		return "ORDER BY n.start_release_date DESC NULLS LAST, n.novel_id ASC"
	case filter.SortOldest:
		return "ORDER BY n.start_release_date ASC NULLS LAST, n.novel_id ASC"
	default: // SortRelevance
		return "ORDER BY n.novel_id DESC"
	}
}
