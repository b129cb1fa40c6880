package novel

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webndb/webndb/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Novel, error) {
	const query = `
		SELECT n.novel_id, n.original_language, n.description, n.status,
		       n.start_release_date, n.end_release_date, n.created_at,
		       COALESCE(s.chapters, 0), COALESCE(s.readers, 0),
		       COALESCE(s.rating, 0), COALESCE(s.rating_count, 0), COALESCE(s.reviews, 0)
		FROM novel n
		LEFT JOIN novel_stats s ON s.novel_id = n.novel_id
		WHERE n.novel_id = $1`

	n := &Novel{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&n.ID, &n.OriginalLanguage, &n.Description, &n.Status,
		&n.StartReleaseDate, &n.EndReleaseDate, &n.CreatedAt,
		&n.Stats.Chapters, &n.Stats.Readers,
		&n.Stats.Rating, &n.Stats.RatingCount, &n.Stats.Reviews,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}

	if err := repository.loadAssociations(context, n); err != nil {
		return nil, err
	}

	return n, nil
}

// loadAssociations fills titles, tags, publishers, and staff for one novel.
func (repository *PostgresRepository) loadAssociations(context context.Context, n *Novel) error {
	const titleQuery = `
		SELECT lang, title, latin, official
		FROM novel_title
		WHERE novel_id = $1
		ORDER BY official DESC, lang ASC`

	rows, err := repository.db.Query(context, titleQuery, n.ID)
	if err != nil {
		return dberr.Wrap(err, "Novel")
	}
	defer rows.Close()

	n.Titles = make([]Title, 0, 2)
	for rows.Next() {
		t := Title{}
		if err := rows.Scan(&t.Lang, &t.Title, &t.Latin, &t.Official); err != nil {
			return dberr.Wrap(err, "Novel")
		}
		n.Titles = append(n.Titles, t)
	}
	rows.Close()

	const aggQuery = `
		SELECT
			COALESCE((SELECT array_agg(t.slug ORDER BY t.slug)
			          FROM novel_tag nt JOIN tag t ON t.id = nt.tag_id
			          WHERE nt.novel_id = $1), '{}'),
			COALESCE((SELECT array_agg(name ORDER BY name)
			          FROM novel_publisher WHERE novel_id = $1), '{}'),
			COALESCE((SELECT array_agg(name ORDER BY name)
			          FROM novel_staff WHERE novel_id = $1), '{}')`

	err = repository.db.QueryRow(context, aggQuery, n.ID).Scan(&n.Tags, &n.Publishers, &n.Staff)
	if err != nil {
		return dberr.Wrap(err, "Novel")
	}

	return nil
}

// List returns a catalogue page. Filters compile to optional predicates so
// the common unfiltered listing stays a single index-friendly scan.
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, limit, offset int) ([]ListItem, int, error) {
	where := "TRUE"
	args := []any{}

	if len(filter.Statuses) > 0 {
		args = append(args, filter.Statuses)
		where += fmt.Sprintf(" AND n.status = ANY($%d)", len(args))
	}
	if len(filter.Languages) > 0 {
		args = append(args, filter.Languages)
		where += fmt.Sprintf(" AND n.original_language = ANY($%d)", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM novel n WHERE " + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Novel")
	}

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
		ORDER BY n.novel_id DESC
		LIMIT %d OFFSET %d`, where, limit, offset)

	rows, err := repository.db.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Novel")
	}
	defer rows.Close()

	items := make([]ListItem, 0, limit)
	for rows.Next() {
		item := ListItem{}
		err := rows.Scan(
			&item.ID, &item.MainTitle, &item.OriginalLanguage, &item.Status, &item.StartReleaseDate,
			&item.Stats.Chapters, &item.Stats.Readers,
			&item.Stats.Rating, &item.Stats.RatingCount, &item.Stats.Reviews,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Novel")
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (*Novel, error) {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}
	defer func() { _ = tx.Rollback(context) }()

	const insertNovel = `
		INSERT INTO novel (original_language, description, status)
		VALUES ($1, $2, $3)
		RETURNING novel_id`

	var id int64
	err = tx.QueryRow(context, insertNovel, input.OriginalLanguage, input.Description, input.Status).Scan(&id)
	if err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}

	if err := insertTitles(context, tx, id, input.Titles); err != nil {
		return nil, err
	}

	// Stats row exists from day one so aggregate filters never miss the novel.
	if _, err := tx.Exec(context, `INSERT INTO novel_stats (novel_id) VALUES ($1)`, id); err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}

	return repository.GetByID(context, id)
}

func (repository *PostgresRepository) Update(context context.Context, id int64, input UpdateInput) (*Novel, error) {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}
	defer func() { _ = tx.Rollback(context) }()

	const updateNovel = `
		UPDATE novel SET
			original_language = COALESCE($2, original_language),
			description       = COALESCE($3, description),
			status            = COALESCE($4, status)
		WHERE novel_id = $1`

	cmd, err := tx.Exec(context, updateNovel, id, input.OriginalLanguage, input.Description, input.Status)
	if err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}
	if cmd.RowsAffected() == 0 {
		return nil, dberr.Wrap(pgx.ErrNoRows, "Novel")
	}

	if input.Titles != nil {
		if _, err := tx.Exec(context, `DELETE FROM novel_title WHERE novel_id = $1`, id); err != nil {
			return nil, dberr.Wrap(err, "Novel")
		}
		if err := insertTitles(context, tx, id, input.Titles); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "Novel")
	}

	return repository.GetByID(context, id)
}

func (repository *PostgresRepository) ListReleases(context context.Context, novelID int64, limit, offset int) ([]Release, int, error) {
	var total int
	err := repository.db.QueryRow(context,
		`SELECT COUNT(*) FROM release WHERE novel_id = $1`, novelID).Scan(&total)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Release")
	}

	const query = `
		SELECT release_id, novel_id, lang, official, title, latin, release_date
		FROM release
		WHERE novel_id = $1
		ORDER BY release_date DESC NULLS LAST, release_id DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, novelID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Release")
	}
	defer rows.Close()

	releases := make([]Release, 0, limit)
	for rows.Next() {
		r := Release{}
		if err := rows.Scan(&r.ID, &r.NovelID, &r.Lang, &r.Official, &r.Title, &r.Latin, &r.ReleaseDate); err != nil {
			return nil, 0, dberr.Wrap(err, "Release")
		}
		releases = append(releases, r)
	}

	return releases, total, rows.Err()
}

// insertTitles bulk-inserts the title set for a novel inside a transaction.
func insertTitles(context context.Context, tx pgx.Tx, novelID int64, titles []TitleInput) error {
	const insertTitle = `
		INSERT INTO novel_title (novel_id, lang, official, title, latin)
		VALUES ($1, $2, $3, $4, $5)`

	for _, t := range titles {
		if _, err := tx.Exec(context, insertTitle, novelID, t.Lang, t.Official, t.Title, t.Latin); err != nil {
			return dberr.Wrap(err, "Novel title")
		}
	}
	return nil
}
