package tag

import (
	"context"
	"log/slog"

	"github.com/webndb/webndb/internal/platform/validate"
	"github.com/webndb/webndb/pkg/slug"
	"github.com/webndb/webndb/pkg/uuidv7"
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

// ListTags returns the full vocabulary grouped by category, in the order
// the search form renders it.
func (service *Service) ListTags(context context.Context) ([]Group, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTagBySlug(context context.Context, tagSlug string) (*Tag, error) {
	v := &validate.Validator{}
	v.Slug("slug", tagSlug)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.GetTagBySlug(context, tagSlug)
}

// NameMaxLen bounds tag names; slugs can only shrink from there.
const NameMaxLen = 100

// CreateTag adds one entry to the vocabulary. The slug is derived from the
// name, so two tags with names that collapse to the same slug conflict.
func (service *Service) CreateTag(context context.Context, input CreateInput) (*Tag, error) {
	v := &validate.Validator{}
	v.Custom("category", !input.Category.IsValid(), "Unknown tag category")
	v.Required("name", input.Name)
	v.MaxLen("name", input.Name, NameMaxLen)
	if err := v.Err(); err != nil {
		return nil, err
	}

	tag := Tag{
		ID:          uuidv7.New(),
		Category:    input.Category,
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
	}
	v.Required("slug", tag.Slug)
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateTag(context, tag)
	if err != nil {
		return nil, err
	}

	service.logger.Info("tag_created",
		slog.String("slug", created.Slug),
		slog.String("category", string(created.Category)),
	)
	return created, nil
}
