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

// ContentStore is the persistence surface a ContentService needs.
type ContentStore interface {
	List(ctx context.Context) ([]*models.ContentEntry, error)
	GetByID(ctx context.Context, id string) (*models.ContentEntry, error)
	Create(ctx context.Context, entry *models.ContentEntry) error
	Update(ctx context.Context, entry *models.ContentEntry) error
	Delete(ctx context.Context, id string) error
}

// ContentService implements the lifecycle of one title/description/image
// collection. Blogs, services and abouts each get their own instance over
// their own table; entity names the collection in errors and messages.
type ContentService struct {
	store        ContentStore
	storage      filestorage.Storage
	entity       string
	defaultImage string
}

// NewContentService creates a new ContentService.
func NewContentService(store ContentStore, storage filestorage.Storage, entity, defaultImage string) *ContentService {
	return &ContentService{
		store:        store,
		storage:      storage,
		entity:       entity,
		defaultImage: defaultImage,
	}
}

// Entity returns the display name of the collection.
func (s *ContentService) Entity() string {
	return s.entity
}

// List returns every entry, newest first.
func (s *ContentService) List(ctx context.Context) ([]*models.ContentEntry, error) {
	return s.store.List(ctx)
}

// Create validates the request, stores the image if one was uploaded and
// inserts the entry. Entries without an image get the default placeholder.
func (s *ContentService) Create(ctx context.Context, req *dto.ContentCreateRequest, image *multipart.FileHeader) (*models.ContentEntry, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description")
	}

	imageURL := s.defaultImage
	if image != nil {
		url, err := s.storage.Save(image)
		if err != nil {
			logger.Error().Err(err).Str("entity", s.entity).Msg("Failed to store uploaded image")
			return nil, apperrors.NewStorageError(err, "failed to store image")
		}
		imageURL = url
	}

	entry := &models.ContentEntry{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Str("entity", s.entity).Str("id", entry.ID).Msg("Entry created")
	return entry, nil
}

// Update applies a partial update to an existing entry. Absent fields keep
// their stored values; a new image replaces the stored URL but the old file
// is left in place.
func (s *ContentService) Update(ctx context.Context, id string, req *dto.ContentUpdateRequest, image *multipart.FileHeader) (*models.ContentEntry, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError(s.entity)
		}
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if image != nil {
		url, err := s.storage.Save(image)
		if err != nil {
			logger.Error().Err(err).Str("entity", s.entity).Msg("Failed to store uploaded image")
			return nil, apperrors.NewStorageError(err, "failed to store image")
		}
		entry.ImageURL = url
	}

	if err := s.store.Update(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError(s.entity)
		}
		return nil, err
	}

	return entry, nil
}

// Delete removes an entry by id. The stored image file is not removed; other
// records may have been created against the same URL.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError(s.entity)
		}
		return err
	}

	logger.Info().Str("entity", s.entity).Str("id", id).Msg("Entry deleted")
	return nil
}
