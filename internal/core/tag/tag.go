package tag

import "time"

// Category is the closed set of groupings the tag vocabulary is organized by.
type Category string

const (
	CategoryGenre   Category = "genre"
	CategoryTheme   Category = "theme"
	CategoryContent Category = "content"
	CategoryOther   Category = "other"
)

// Categories returns all tag categories in display order.
func Categories() []Category {
	return []Category{CategoryGenre, CategoryTheme, CategoryContent, CategoryOther}
}

// IsValid reports whether the category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGenre, CategoryTheme, CategoryContent, CategoryOther:
		return true
	}
	return false
}

// Group bundles the tags of one category for vocabulary responses.
type Group struct {
	Category Category `json:"category"`

	// Tags contains the child tags for this category, in display order.
	Tags []Tag `json:"tags"`
}

// Tag represents one entry of the closed tag vocabulary offered to the
// search form. The tri-state include/exclude selection references tags
// by slug.
type Tag struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"-"`
}

// CreateInput is the request body for adding a tag to the vocabulary.
// The slug is derived from the name server-side, never client-supplied.
type CreateInput struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
}
