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

type fakeSliderStore struct {
	sliders []*models.Slider
}

func (s *fakeSliderStore) List(ctx context.Context) ([]*models.Slider, error) {
	return s.sliders, nil
}

func (s *fakeSliderStore) GetByID(ctx context.Context, id string) (*models.Slider, error) {
	for _, sl := range s.sliders {
		if sl.ID == id {
			copied := *sl
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *fakeSliderStore) Create(ctx context.Context, slider *models.Slider) error {
	slider.ID = uuid.NewString()
	s.sliders = append(s.sliders, slider)
	return nil
}

func (s *fakeSliderStore) Update(ctx context.Context, slider *models.Slider) error {
	for i, sl := range s.sliders {
		if sl.ID == slider.ID {
			s.sliders[i] = slider
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeSliderStore) Delete(ctx context.Context, id string) error {
	for i, sl := range s.sliders {
		if sl.ID == id {
			s.sliders = append(s.sliders[:i], s.sliders[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func TestSliderCreate_WithoutImageFallsBackToPlaceholder(t *testing.T) {
	store := &fakeSliderStore{}
	svc := NewSliderService(store, &fakeStorage{}, testDefaultImage)

	slider, err := svc.Create(context.Background(), &dto.SliderCreateRequest{Title: "Summer"}, nil)
	require.NoError(t, err)

	// Raw API calls without a file still get a renderable slide
	assert.Equal(t, testDefaultImage, slider.ImageURL)
}

func TestSliderCreate_WithImage(t *testing.T) {
	store := &fakeSliderStore{}
	storage := &fakeStorage{}
	svc := NewSliderService(store, storage, testDefaultImage)

	slider, err := svc.Create(context.Background(), &dto.SliderCreateRequest{Title: "Summer"}, testFileHeader(t))
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saved)
	assert.NotEqual(t, testDefaultImage, slider.ImageURL)
}

func TestSliderCreate_MissingTitleRejected(t *testing.T) {
	store := &fakeSliderStore{}
	svc := NewSliderService(store, &fakeStorage{}, testDefaultImage)

	_, err := svc.Create(context.Background(), &dto.SliderCreateRequest{}, nil)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.sliders)
}

func TestSliderUpdate_TitleOnlyKeepsImage(t *testing.T) {
	store := &fakeSliderStore{}
	storage := &fakeStorage{}
	svc := NewSliderService(store, storage, testDefaultImage)

	created, err := svc.Create(context.Background(), &dto.SliderCreateRequest{Title: "Old"}, testFileHeader(t))
	require.NoError(t, err)

	newTitle := "New"
	updated, err := svc.Update(context.Background(), created.ID, &dto.SliderUpdateRequest{Title: &newTitle}, nil)
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}
