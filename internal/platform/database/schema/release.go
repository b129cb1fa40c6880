package schema

// ReleaseTable represents the 'release' table
type ReleaseTable struct {
	Table       string
	ID          string
	NovelID     string
	Lang        string
	Official    string
	Title       string
	Latin       string
	ReleaseDate string
	CreatedAt   string
}

// Release is the schema definition for release
var Release = ReleaseTable{
	Table:       "release",
	ID:          "release_id",
	NovelID:     "novel_id",
	Lang:        "lang",
	Official:    "official",
	Title:       "title",
	Latin:       "latin",
	ReleaseDate: "release_date",
	CreatedAt:   "created_at",
}

func (t ReleaseTable) Columns() []string {
	return []string{
		t.ID, t.NovelID, t.Lang, t.Official, t.Title, t.Latin,
		t.ReleaseDate, t.CreatedAt,
	}
}
