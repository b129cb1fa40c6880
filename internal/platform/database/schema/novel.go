package schema

// NovelTable represents the 'novel' table
type NovelTable struct {
	Table            string
	ID               string
	OriginalLanguage string
	Description      string
	Status           string
	StartReleaseDate string
	EndReleaseDate   string
	CreatedAt        string
}

// Novel is the schema definition for novel
var Novel = NovelTable{
	Table:            "novel",
	ID:               "novel_id",
	OriginalLanguage: "original_language",
	Description:      "description",
	Status:           "status",
	StartReleaseDate: "start_release_date",
	EndReleaseDate:   "end_release_date",
	CreatedAt:        "created_at",
}

func (t NovelTable) Columns() []string {
	return []string{
		t.ID, t.OriginalLanguage, t.Description, t.Status,
		t.StartReleaseDate, t.EndReleaseDate, t.CreatedAt,
	}
}
