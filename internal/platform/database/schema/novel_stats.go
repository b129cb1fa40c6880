package schema

// NovelStatsTable represents the 'novel_stats' table
type NovelStatsTable struct {
	Table       string
	NovelID     string
	Chapters    string
	Readers     string
	Rating      string
	RatingCount string
	Reviews     string
	UpdatedAt   string
}

// NovelStats is the schema definition for novel_stats
var NovelStats = NovelStatsTable{
	Table:       "novel_stats",
	NovelID:     "novel_id",
	Chapters:    "chapters",
	Readers:     "readers",
	Rating:      "rating",
	RatingCount: "rating_count",
	Reviews:     "reviews",
	UpdatedAt:   "updated_at",
}

func (t NovelStatsTable) Columns() []string {
	return []string{
		t.NovelID, t.Chapters, t.Readers, t.Rating, t.RatingCount,
		t.Reviews, t.UpdatedAt,
	}
}
