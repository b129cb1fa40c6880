package schema

// NovelPublisherTable represents the 'novel_publisher' table
type NovelPublisherTable struct {
	Table   string
	NovelID string
	Name    string
}

// NovelPublisher is the schema definition for novel_publisher
var NovelPublisher = NovelPublisherTable{
	Table:   "novel_publisher",
	NovelID: "novel_id",
	Name:    "name",
}

func (t NovelPublisherTable) Columns() []string {
	return []string{t.NovelID, t.Name}
}
