package novel_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/core/novel"
	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRepository records the last write and returns canned values.
type stubRepository struct {
	created  *novel.CreateInput
	updated  *novel.UpdateInput
	novel    *novel.Novel
	releases []novel.Release
}

func (s *stubRepository) GetByID(_ context.Context, id int64) (*novel.Novel, error) {
	if s.novel != nil && s.novel.ID == id {
		return s.novel, nil
	}
	return nil, apperr.NotFound("Novel")
}

func (s *stubRepository) Create(_ context.Context, input novel.CreateInput) (*novel.Novel, error) {
	s.created = &input
	return &novel.Novel{ID: 1, Status: input.Status}, nil
}

func (s *stubRepository) Update(_ context.Context, id int64, input novel.UpdateInput) (*novel.Novel, error) {
	s.updated = &input
	return &novel.Novel{ID: id}, nil
}

func (s *stubRepository) List(_ context.Context, _ novel.ListFilter, _, _ int) ([]novel.ListItem, int, error) {
	return nil, 0, nil
}

func (s *stubRepository) ListReleases(_ context.Context, _ int64, _, _ int) ([]novel.Release, int, error) {
	if s.releases != nil {
		return s.releases, len(s.releases), nil
	}
	return nil, 0, nil
}

/*
TestService_CreateNovel_Validation exercises the title and enum rules.
*/
func TestService_CreateNovel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   novel.CreateInput
		wantErr bool
	}{
		{
			name: "valid_multilingual",
			input: novel.CreateInput{
				Status: novel.StatusOngoing,
				Titles: []novel.TitleInput{
					{Lang: novel.LanguageEN, Title: "My Web Novel", Official: true},
					{Lang: novel.LanguageKO, Title: "나의 웹소설", Latin: pointer.To("Naui wepsoseol")},
				},
			},
		},
		{
			// Stub entries may omit the source language entirely.
			name: "valid_without_original_language",
			input: novel.CreateInput{
				Titles: []novel.TitleInput{{Lang: novel.LanguageEN, Title: "Untranslated Stub"}},
			},
		},
		{
			name:    "no_titles",
			input:   novel.CreateInput{Status: novel.StatusOngoing},
			wantErr: true,
		},
		{
			name: "repeated_title_language",
			input: novel.CreateInput{
				Status: novel.StatusOngoing,
				Titles: []novel.TitleInput{
					{Lang: novel.LanguageJA, Title: "ウェブ小説", Official: true},
					{Lang: novel.LanguageJA, Title: "別のタイトル"},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid_language",
			input: novel.CreateInput{
				Status: novel.StatusOngoing,
				Titles: []novel.TitleInput{{Lang: "fr", Title: "Roman"}},
			},
			wantErr: true,
		},
		{
			name: "empty_title_text",
			input: novel.CreateInput{
				Status: novel.StatusOngoing,
				Titles: []novel.TitleInput{{Lang: novel.LanguageEN, Title: "   "}},
			},
			wantErr: true,
		},
		{
			name: "invalid_status",
			input: novel.CreateInput{
				Status: "abandoned",
				Titles: []novel.TitleInput{{Lang: novel.LanguageEN, Title: "My Web Novel"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			service := novel.NewService(repo, discardLogger())

			_, err := service.CreateNovel(context.Background(), tt.input)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Nil(t, repo.created, "repository must not be touched on validation failure")
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.created)
				if tt.input.OriginalLanguage == nil {
					assert.Nil(t, repo.created.OriginalLanguage)
				}
			}
		})
	}
}

/*
TestService_CreateNovel_DefaultStatus verifies that an omitted status
falls back to the stub state.
*/
func TestService_CreateNovel_DefaultStatus(t *testing.T) {
	repo := &stubRepository{}
	service := novel.NewService(repo, discardLogger())

	created, err := service.CreateNovel(context.Background(), novel.CreateInput{
		Titles: []novel.TitleInput{{Lang: novel.LanguageEN, Title: "Untracked Novel"}},
	})

	require.NoError(t, err)
	assert.Equal(t, novel.StatusStub, created.Status)
}

/*
TestService_UpdateNovel_PartialSemantics verifies that nil fields pass
through untouched while a non-nil title set is fully validated.
*/
func TestService_UpdateNovel_PartialSemantics(t *testing.T) {
	repo := &stubRepository{}
	service := novel.NewService(repo, discardLogger())

	// Nil titles: no title validation runs at all.
	_, err := service.UpdateNovel(context.Background(), 7, novel.UpdateInput{})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.updated.Titles)

	// A pointer field updates just that attribute.
	_, err = service.UpdateNovel(context.Background(), 7, novel.UpdateInput{
		Status: pointer.To(novel.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, novel.StatusCompleted, *repo.updated.Status)

	// Non-nil titles with duplicates are rejected.
	_, err = service.UpdateNovel(context.Background(), 7, novel.UpdateInput{
		Titles: []novel.TitleInput{
			{Lang: novel.LanguageEN, Title: "A"},
			{Lang: novel.LanguageEN, Title: "B"},
		},
	})
	require.Error(t, err)
}

/*
TestService_ListNovels_Validation verifies that list filters are checked
against the closed vocabularies before touching the repository.
*/
func TestService_ListNovels_Validation(t *testing.T) {
	service := novel.NewService(&stubRepository{}, discardLogger())

	_, _, err := service.ListNovels(context.Background(), novel.ListFilter{
		Statuses: []novel.Status{"abandoned"},
	}, 20, 0)
	require.Error(t, err)

	_, _, err = service.ListNovels(context.Background(), novel.ListFilter{
		Languages: []novel.Language{"fr"},
	}, 20, 0)
	require.Error(t, err)

	_, _, err = service.ListNovels(context.Background(), novel.ListFilter{
		Statuses:  []novel.Status{novel.StatusOngoing},
		Languages: []novel.Language{novel.LanguageJA},
	}, 20, 0)
	require.NoError(t, err)
}

/*
TestRelease_UnknownDate verifies that releases without a publication date
pass through the service and serialize without a release_date field, rather
than failing the whole listing.
*/
func TestRelease_UnknownDate(t *testing.T) {
	dated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		releases: []novel.Release{
			{ID: 1, NovelID: 7, Lang: novel.LanguageEN, Title: "Chapter 1", ReleaseDate: &dated},
			{ID: 2, NovelID: 7, Lang: novel.LanguageEN, Title: "Side Story"},
		},
	}
	service := novel.NewService(repo, discardLogger())

	releases, total, err := service.ListReleases(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// 1. The undated release survives with a nil date
	require.Len(t, releases, 2)
	assert.Nil(t, releases[1].ReleaseDate)

	// 2. On the wire, the date field is simply absent
	encoded, err := json.Marshal(releases[1])
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "release_date")

	encoded, err = json.Marshal(releases[0])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "2024-03-01")
}
