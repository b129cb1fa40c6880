package tag

import "context"

type Repository interface {
	ListTags(context context.Context) ([]Group, error)
	GetTagBySlug(context context.Context, slug string) (*Tag, error)
	CreateTag(context context.Context, tag Tag) (*Tag, error)
}
