package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// TitleStore is the persistence surface a TitleService needs.
type TitleStore interface {
	List(ctx context.Context) ([]*models.TitleEntry, error)
	GetByID(ctx context.Context, id string) (*models.TitleEntry, error)
	Create(ctx context.Context, entry *models.TitleEntry) error
	Update(ctx context.Context, entry *models.TitleEntry) error
	Delete(ctx context.Context, id string) error
}

// TitleService implements the lifecycle of a title-only collection. Courses
// and keywords each get their own instance over their own table.
type TitleService struct {
	store  TitleStore
	entity string
}

// NewTitleService creates a new TitleService.
func NewTitleService(store TitleStore, entity string) *TitleService {
	return &TitleService{store: store, entity: entity}
}

// Entity returns the display name of the collection.
func (s *TitleService) Entity() string {
	return s.entity
}

// List returns every entry, newest first.
func (s *TitleService) List(ctx context.Context) ([]*models.TitleEntry, error) {
	return s.store.List(ctx)
}

// Create validates and inserts a new entry.
func (s *TitleService) Create(ctx context.Context, req *dto.TitleCreateRequest) (*models.TitleEntry, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title")
	}

	entry := &models.TitleEntry{Title: req.Title}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Str("entity", s.entity).Str("id", entry.ID).Msg("Entry created")
	return entry, nil
}

// Update applies a partial update to an existing entry.
func (s *TitleService) Update(ctx context.Context, id string, req *dto.TitleUpdateRequest) (*models.TitleEntry, error) {
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

	if err := s.store.Update(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError(s.entity)
		}
		return nil, err
	}

	return entry, nil
}

// Delete removes an entry by id.
func (s *TitleService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError(s.entity)
		}
		return err
	}

	logger.Info().Str("entity", s.entity).Str("id", id).Msg("Entry deleted")
	return nil
}
