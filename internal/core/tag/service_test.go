package tag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webndb/webndb/internal/core/tag"
)

// stubRepository echoes created tags back and records them.
type stubRepository struct {
	created *tag.Tag
}

func (stub *stubRepository) ListTags(_ context.Context) ([]tag.Group, error) {
	return nil, nil
}

func (stub *stubRepository) GetTagBySlug(_ context.Context, _ string) (*tag.Tag, error) {
	return nil, nil
}

func (stub *stubRepository) CreateTag(_ context.Context, created tag.Tag) (*tag.Tag, error) {
	stub.created = &created
	return &created, nil
}

func newTestService(repo *stubRepository) *tag.Service {
	return tag.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateTag verifies ID minting and server-side slug derivation.
*/
func TestService_CreateTag(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo)

	created, err := service.CreateTag(context.Background(), tag.CreateInput{
		Category: tag.CategoryTheme,
		Name:     "Régression Éternelle",
	})
	require.NoError(t, err)

	// 1. Slug is ASCII, lowercase, hyphenated — accents stripped
	assert.Equal(t, "regression-eternelle", created.Slug)

	// 2. ID is minted server-side
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, tag.CategoryTheme, created.Category)
}

/*
TestService_CreateTag_Validation verifies rejection of invalid input before
any repository call.
*/
func TestService_CreateTag_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input tag.CreateInput
	}{
		{"unknown category", tag.CreateInput{Category: "mood", Name: "Cozy"}},
		{"empty name", tag.CreateInput{Category: tag.CategoryGenre, Name: ""}},
		{"name collapses to empty slug", tag.CreateInput{Category: tag.CategoryGenre, Name: "★★★"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := &stubRepository{}
			_, err := newTestService(repo).CreateTag(context.Background(), testCase.input)

			require.Error(t, err)
			assert.Nil(t, repo.created)
		})
	}
}
