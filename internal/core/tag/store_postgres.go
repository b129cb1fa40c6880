package tag

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webndb/webndb/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(context context.Context) ([]Group, error) {
	const query = `
		SELECT category, name, slug, description, id
		FROM tag
		ORDER BY category, name ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}
	defer rows.Close()

	// Seed groups in display order so empty categories still appear.
	groups := make([]Group, 0, len(Categories()))
	groupIndex := make(map[Category]int, len(Categories()))
	for i, category := range Categories() {
		groups = append(groups, Group{Category: category, Tags: make([]Tag, 0)})
		groupIndex[category] = i
	}

	for rows.Next() {
		t := Tag{}
		if err := rows.Scan(&t.Category, &t.Name, &t.Slug, &t.Description, &t.ID); err != nil {
			return nil, dberr.Wrap(err, "Tag")
		}

		if i, ok := groupIndex[t.Category]; ok {
			groups[i].Tags = append(groups[i].Tags, t)
		}
	}

	return groups, rows.Err()
}

func (repository *PostgresRepository) CreateTag(context context.Context, tag Tag) (*Tag, error) {
	const query = `
		INSERT INTO tag (id, category, name, slug, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := repository.db.QueryRow(context, query,
		tag.ID, tag.Category, tag.Name, tag.Slug, tag.Description,
	).Scan(&tag.CreatedAt)
	if err != nil {
		// Duplicate slugs surface as a conflict via the unique constraint.
		return nil, dberr.Wrap(err, "Tag")
	}

	return &tag, nil
}

func (repository *PostgresRepository) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	const query = `
		SELECT id, category, name, slug, description
		FROM tag
		WHERE slug = $1`

	t := &Tag{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&t.ID, &t.Category, &t.Name, &t.Slug, &t.Description,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}

	return t, nil
}
