package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

type fakeTitleStore struct {
	entries []*models.TitleEntry
}

func (s *fakeTitleStore) List(ctx context.Context) ([]*models.TitleEntry, error) {
	return s.entries, nil
}

func (s *fakeTitleStore) GetByID(ctx context.Context, id string) (*models.TitleEntry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *fakeTitleStore) Create(ctx context.Context, entry *models.TitleEntry) error {
	entry.ID = uuid.NewString()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeTitleStore) Update(ctx context.Context, entry *models.TitleEntry) error {
	for i, e := range s.entries {
		if e.ID == entry.ID {
			s.entries[i] = entry
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeTitleStore) Delete(ctx context.Context, id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func TestTitleCreate_Valid(t *testing.T) {
	store := &fakeTitleStore{}
	svc := NewTitleService(store, "Course")

	entry, err := svc.Create(context.Background(), &dto.TitleCreateRequest{Title: "Go for beginners"})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Len(t, store.entries, 1)
}

func TestTitleCreate_BlankTitleRejected(t *testing.T) {
	store := &fakeTitleStore{}
	svc := NewTitleService(store, "Course")

	_, err := svc.Create(context.Background(), &dto.TitleCreateRequest{Title: "   "})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.entries)
}

func TestTitleUpdate_MissingIDNamesEntity(t *testing.T) {
	svc := NewTitleService(&fakeTitleStore{}, "Keyword")

	title := "seo"
	_, err := svc.Update(context.Background(), "no-such-id", &dto.TitleUpdateRequest{Title: &title})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Keyword not found", err.Error())
}
