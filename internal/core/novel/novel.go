package novel

import "time"

// Language is an IETF language tag from the closed set the database supports.
type Language string

const (
	LanguageEN     Language = "en"      // English
	LanguageKO     Language = "ko"      // Korean
	LanguageZHHans Language = "zh-Hans" // Chinese, Han (Simplified)
	LanguageZHHant Language = "zh-Hant" // Chinese, Han (Traditional)
	LanguageJA     Language = "ja"      // Japanese
)

// Languages returns all supported language tags.
func Languages() []Language {
	return []Language{LanguageEN, LanguageKO, LanguageZHHans, LanguageZHHant, LanguageJA}
}

// IsValid reports whether the language is a member of the closed set.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageKO, LanguageZHHans, LanguageZHHant, LanguageJA:
		return true
	}
	return false
}

// Status is the publication status of a web novel.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusHiatus    Status = "hiatus"
	StatusCancelled Status = "cancelled"
	StatusStub      Status = "stub"
)

// Statuses returns all publication statuses in display order.
func Statuses() []Status {
	return []Status{StatusOngoing, StatusCompleted, StatusHiatus, StatusCancelled, StatusStub}
}

// IsValid reports whether the status is a member of the closed set.
func (s Status) IsValid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusHiatus, StatusCancelled, StatusStub:
		return true
	}
	return false
}

// Title is one representation of a novel's title in a specific language.
// A novel carries at most one title per language.
type Title struct {
	Lang Language `json:"lang"`
	// Title is the title in the original script of Lang.
	Title string `json:"title"`
	// Latin is the romanized version, if any.
	Latin *string `json:"latin"`
	// Official indicates an official translation rather than a fan romanization.
	Official bool `json:"official"`
}

// Stats holds the aggregate counters the numeric search criteria filter on.
type Stats struct {
	Chapters    int     `json:"chapters"`
	Readers     int     `json:"readers"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
	Reviews     int     `json:"reviews"`
}

// Novel is the canonical catalog entry for a web novel.
type Novel struct {
	ID               int64     `json:"novel_id,string"`
	OriginalLanguage *Language `json:"original_language"`
	Description      *string   `json:"description"`
	Status           Status    `json:"status"`

	// StartReleaseDate and EndReleaseDate bound the novel's release history.
	StartReleaseDate *time.Time `json:"start_release_date,omitempty"`
	EndReleaseDate   *time.Time `json:"end_release_date,omitempty"`

	Titles     []Title  `json:"titles"`
	Tags       []string `json:"tags,omitempty"`
	Publishers []string `json:"publishers,omitempty"`
	Staff      []string `json:"staff,omitempty"`

	Stats Stats `json:"stats"`

	CreatedAt time.Time `json:"-"`
}

// ListItem is the lightweight row returned by catalogue listings: the main
// title plus the attributes the results list renders, without associations.
type ListItem struct {
	ID               int64      `json:"novel_id,string"`
	MainTitle        string     `json:"title"`
	OriginalLanguage *Language  `json:"original_language"`
	Status           Status     `json:"status"`
	StartReleaseDate *time.Time `json:"start_release_date,omitempty"`
	Stats            Stats      `json:"stats"`
}

// ListFilter narrows catalogue listings. Empty slices match everything.
type ListFilter struct {
	Statuses  []Status
	Languages []Language
}

// Release is one published chapter release of a novel in some language.
// Releases drive the available-language and release-date filters.
type Release struct {
	ID       int64    `json:"release_id,string"`
	NovelID  int64    `json:"novel_id,string"`
	Lang     Language `json:"lang"`
	Official bool     `json:"official"`
	Title    string   `json:"title"`
	Latin    *string  `json:"latin"`

	// ReleaseDate is nil for releases whose publication date is unknown.
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

// # Write Inputs

// TitleInput carries one title in create/update requests.
type TitleInput struct {
	Lang     Language `json:"lang"`
	Title    string   `json:"title"`
	Latin    *string  `json:"latin"`
	Official bool     `json:"official"`
}

// CreateInput is the request body for creating a novel.
type CreateInput struct {
	Titles           []TitleInput `json:"titles"`
	OriginalLanguage *Language    `json:"original_language"`
	Description      *string      `json:"description"`
	Status           Status       `json:"status"`
}

// UpdateInput is the request body for updating a novel.
// Nil fields are left unchanged; a non-nil Titles slice replaces all titles.
type UpdateInput struct {
	Titles           []TitleInput `json:"titles"`
	OriginalLanguage *Language    `json:"original_language"`
	Description      *string      `json:"description"`
	Status           *Status      `json:"status"`
}
