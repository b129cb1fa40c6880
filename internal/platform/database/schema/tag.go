package schema

// TagTable represents the 'tag' table
type TagTable struct {
	Table       string
	ID          string
	Category    string
	Name        string
	Slug        string
	Description string
	CreatedAt   string
}

// Tag is the schema definition for tag
var Tag = TagTable{
	Table:       "tag",
	ID:          "id",
	Category:    "category",
	Name:        "name",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "created_at",
}

func (t TagTable) Columns() []string {
	return []string{t.ID, t.Category, t.Name, t.Slug, t.Description, t.CreatedAt}
}
