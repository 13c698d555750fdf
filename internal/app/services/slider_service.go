package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/filestorage"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// SliderStore is the persistence surface the SliderService needs.
type SliderStore interface {
	List(ctx context.Context) ([]*models.Slider, error)
	GetByID(ctx context.Context, id string) (*models.Slider, error)
	Create(ctx context.Context, slider *models.Slider) error
	Update(ctx context.Context, slider *models.Slider) error
	Delete(ctx context.Context, id string) error
}

// SliderService manages homepage slider entries. The admin UI requires an
// image on creation, but the server still falls back to the placeholder so a
// raw API call without one cannot produce a broken slide.
type SliderService struct {
	store        SliderStore
	storage      filestorage.Storage
	defaultImage string
}

// NewSliderService creates a new SliderService.
func NewSliderService(store SliderStore, storage filestorage.Storage, defaultImage string) *SliderService {
	return &SliderService{
		store:        store,
		storage:      storage,
		defaultImage: defaultImage,
	}
}

// List returns every slider, newest first.
func (s *SliderService) List(ctx context.Context) ([]*models.Slider, error) {
	return s.store.List(ctx)
}

// Create validates the request, stores the image and inserts the slider.
func (s *SliderService) Create(ctx context.Context, req *dto.SliderCreateRequest, image *multipart.FileHeader) (*models.Slider, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title")
	}

	imageURL := s.defaultImage
	if image != nil {
		url, err := s.storage.Save(image)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to store uploaded slider image")
			return nil, apperrors.NewStorageError(err, "failed to store image")
		}
		imageURL = url
	}

	slider := &models.Slider{
		Title:    req.Title,
		ImageURL: imageURL,
	}
	if err := s.store.Create(ctx, slider); err != nil {
		return nil, err
	}

	logger.Info().Str("id", slider.ID).Msg("Slider created")
	return slider, nil
}

// Update applies a partial update to an existing slider.
func (s *SliderService) Update(ctx context.Context, id string, req *dto.SliderUpdateRequest, image *multipart.FileHeader) (*models.Slider, error) {
	slider, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError("Slider")
		}
		return nil, err
	}

	if req.Title != nil {
		slider.Title = *req.Title
	}
	if image != nil {
		url, err := s.storage.Save(image)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to store uploaded slider image")
			return nil, apperrors.NewStorageError(err, "failed to store image")
		}
		slider.ImageURL = url
	}

	if err := s.store.Update(ctx, slider); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError("Slider")
		}
		return nil, err
	}

	return slider, nil
}

// Delete removes a slider by id.
func (s *SliderService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError("Slider")
		}
		return err
	}

	logger.Info().Str("id", id).Msg("Slider deleted")
	return nil
}
