package schema

// NovelTitleTable represents the 'novel_title' table
type NovelTitleTable struct {
	Table    string
	NovelID  string
	Lang     string
	Official string
	Title    string
	Latin    string
}

// NovelTitle is the schema definition for novel_title
var NovelTitle = NovelTitleTable{
	Table:    "novel_title",
	NovelID:  "novel_id",
	Lang:     "lang",
	Official: "official",
	Title:    "title",
	Latin:    "latin",
}

func (t NovelTitleTable) Columns() []string {
	return []string{t.NovelID, t.Lang, t.Official, t.Title, t.Latin}
}
