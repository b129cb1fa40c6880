package novel

import (
	"context"
	"log/slog"

	"github.com/webndb/webndb/internal/platform/validate"
)

// Maximum lengths shared with the public API schema.
const (
	TitleMaxLen       = 500
	DescriptionMaxLen = 3000
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) GetNovel(context context.Context, id int64) (*Novel, error) {
	return service.repo.GetByID(context, id)
}

// ListNovels returns a catalogue page narrowed by the optional status and
// original-language filters.
func (service *Service) ListNovels(context context.Context, filter ListFilter, limit, offset int) ([]ListItem, int, error) {
	v := &validate.Validator{}
	for _, status := range filter.Statuses {
		v.Custom("status", !status.IsValid(), "Unknown publication status: "+string(status))
	}
	for _, lang := range filter.Languages {
		v.Custom("original_language", !lang.IsValid(), "Unsupported language tag: "+string(lang))
	}
	if err := v.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.List(context, filter, limit, offset)
}

func (service *Service) CreateNovel(context context.Context, input CreateInput) (*Novel, error) {
	if input.Status == "" {
		input.Status = StatusStub
	}

	if err := validateTitles(input.Titles, true); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	if input.OriginalLanguage != nil {
		v.Custom("original_language", !input.OriginalLanguage.IsValid(), "Unsupported language tag")
	}
	if input.Description != nil {
		v.MaxLen("description", *input.Description, DescriptionMaxLen)
	}
	v.Custom("status", !input.Status.IsValid(), "Unknown publication status")
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("novel_created", slog.Int64("novel_id", created.ID))
	return created, nil
}

func (service *Service) UpdateNovel(context context.Context, id int64, input UpdateInput) (*Novel, error) {
	// A nil Titles slice means "leave titles unchanged"; a non-nil slice
	// replaces the full set and must satisfy the same rules as creation.
	if input.Titles != nil {
		if err := validateTitles(input.Titles, true); err != nil {
			return nil, err
		}
	}

	v := &validate.Validator{}
	if input.OriginalLanguage != nil {
		v.Custom("original_language", !input.OriginalLanguage.IsValid(), "Unsupported language tag")
	}
	if input.Description != nil {
		v.MaxLen("description", *input.Description, DescriptionMaxLen)
	}
	if input.Status != nil {
		v.Custom("status", !input.Status.IsValid(), "Unknown publication status")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return service.repo.Update(context, id, input)
}

func (service *Service) ListReleases(context context.Context, novelID int64, limit, offset int) ([]Release, int, error) {
	return service.repo.ListReleases(context, novelID, limit, offset)
}

// validateTitles enforces the title rules: at least one title when required,
// valid language tags, lengths, and at most one title per language.
func validateTitles(titles []TitleInput, required bool) error {
	v := &validate.Validator{}

	if required && len(titles) == 0 {
		v.Custom("titles", true, "At least one title is required")
		return v.Err()
	}

	if repeated := findRepeatedLang(titles); repeated != nil {
		v.Custom("titles", true, "Duplicate title language: "+string(*repeated))
	}

	for _, t := range titles {
		v.Custom("titles.lang", !t.Lang.IsValid(), "Unsupported language tag")
		v.Required("titles.title", t.Title)
		v.MaxLen("titles.title", t.Title, TitleMaxLen)
		if t.Latin != nil {
			v.MaxLen("titles.latin", *t.Latin, TitleMaxLen)
		}
	}

	return v.Err()
}

// findRepeatedLang returns a language used by more than one title, or nil.
func findRepeatedLang(titles []TitleInput) *Language {
	seen := make(map[Language]struct{}, len(titles))
	for _, t := range titles {
		if _, dup := seen[t.Lang]; dup {
			lang := t.Lang
			return &lang
		}
		seen[t.Lang] = struct{}{}
	}
	return nil
}
