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

// SeoStore is the persistence surface the SeoService needs.
type SeoStore interface {
	List(ctx context.Context) ([]*models.SeoEntry, error)
	GetByID(ctx context.Context, id string) (*models.SeoEntry, error)
	Create(ctx context.Context, entry *models.SeoEntry) error
	Update(ctx context.Context, entry *models.SeoEntry) error
	Delete(ctx context.Context, id string) error
}

// SeoService manages per-page SEO metadata entries.
type SeoService struct {
	store SeoStore
}

// NewSeoService creates a new SeoService.
func NewSeoService(store SeoStore) *SeoService {
	return &SeoService{store: store}
}

// List returns every SEO entry, newest first.
func (s *SeoService) List(ctx context.Context) ([]*models.SeoEntry, error) {
	return s.store.List(ctx)
}

// Create validates and inserts a new SEO entry.
func (s *SeoService) Create(ctx context.Context, req *dto.SeoCreateRequest) (*models.SeoEntry, error) {
	if strings.TrimSpace(req.Page) == "" {
		return nil, apperrors.NewValidationError("page")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("description")
	}

	entry := &models.SeoEntry{
		Page:        req.Page,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Str("page", entry.Page).Str("id", entry.ID).Msg("SEO entry created")
	return entry, nil
}

// Update applies a partial update to an existing SEO entry.
func (s *SeoService) Update(ctx context.Context, id string, req *dto.SeoUpdateRequest) (*models.SeoEntry, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError("SEO entry")
		}
		return nil, err
	}

	if req.Page != nil {
		entry.Page = *req.Page
	}
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.store.Update(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewNotFoundError("SEO entry")
		}
		return nil, err
	}

	return entry, nil
}

// Delete removes an SEO entry by id.
func (s *SeoService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError("SEO entry")
		}
		return err
	}

	logger.Info().Str("id", id).Msg("SEO entry deleted")
	return nil
}
