// Copyright (c) 2026 WebNDB. All rights reserved.

package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webndb/webndb/internal/platform/dberr"
	"github.com/webndb/webndb/internal/search/filter"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Search compiles the snapshot with [BuildQuery] and runs the count and page
// queries against the same WHERE clause, so the total always matches the rows.
func (repository *PostgresRepository) Search(context context.Context, snap filter.Snapshot, limit, offset int) ([]Result, int, error) {
	compiled := BuildQuery(snap)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM novel n
		LEFT JOIN novel_stats s ON s.novel_id = n.novel_id
		WHERE %s`, compiled.Where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, compiled.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Search")
	}

	// main_title picks the official title first; the alias is also the sort
	// column for title ordering.
	pageQuery := fmt.Sprintf(`
		SELECT n.novel_id,
		       COALESCE((SELECT nt.title FROM novel_title nt
		                 WHERE nt.novel_id = n.novel_id
		                 ORDER BY nt.official DESC, nt.lang ASC
		                 LIMIT 1), '') AS main_title,
		       n.original_language, n.status, n.start_release_date,
		       COALESCE(s.chapters, 0), COALESCE(s.readers, 0),
		       COALESCE(s.rating, 0), COALESCE(s.rating_count, 0), COALESCE(s.reviews, 0)
		FROM novel n
		LEFT JOIN novel_stats s ON s.novel_id = n.novel_id
		WHERE %s
		%s
		LIMIT %d OFFSET %d`, compiled.Where, compiled.OrderBy, limit, offset)

	rows, err := repository.db.Query(context, pageQuery, compiled.Args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Search")
	}
	defer rows.Close()

	results := make([]Result, 0, limit)
	for rows.Next() {
		r := Result{}
		err := rows.Scan(
			&r.NovelID, &r.Title, &r.OriginalLanguage, &r.Status, &r.StartReleaseDate,
			&r.Stats.Chapters, &r.Stats.Readers,
			&r.Stats.Rating, &r.Stats.RatingCount, &r.Stats.Reviews,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Search")
		}
		results = append(results, r)
	}

	return results, total, rows.Err()
}
