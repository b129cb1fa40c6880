package schema

// NovelTagTable represents the 'novel_tag' join table
type NovelTagTable struct {
	Table   string
	NovelID string
	TagID   string
}

// NovelTag is the schema definition for novel_tag
var NovelTag = NovelTagTable{
	Table:   "novel_tag",
	NovelID: "novel_id",
	TagID:   "tag_id",
}

func (t NovelTagTable) Columns() []string {
	return []string{t.NovelID, t.TagID}
}
