package schema

// NovelStaffTable represents the 'novel_staff' table
type NovelStaffTable struct {
	Table   string
	NovelID string
	Name    string
}

// NovelStaff is the schema definition for novel_staff
var NovelStaff = NovelStaffTable{
	Table:   "novel_staff",
	NovelID: "novel_id",
	Name:    "name",
}

func (t NovelStaffTable) Columns() []string {
	return []string{t.NovelID, t.Name}
}
