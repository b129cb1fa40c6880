package novel

import "context"

type Repository interface {
	GetByID(context context.Context, id int64) (*Novel, error)
	List(context context.Context, filter ListFilter, limit, offset int) ([]ListItem, int, error)
	Create(context context.Context, input CreateInput) (*Novel, error)
	Update(context context.Context, id int64, input UpdateInput) (*Novel, error)
	ListReleases(context context.Context, novelID int64, limit, offset int) ([]Release, int, error)
}
