package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// SeoRepository stores per-page SEO metadata entries.
type SeoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSeoRepository creates a new SeoRepository.
func NewSeoRepository(db *pgxpool.Pool) *SeoRepository {
	return &SeoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every entry, newest first.
func (r *SeoRepository) List(ctx context.Context) ([]*models.SeoEntry, error) {
	sql, args, err := r.sb.Select("id", "page", "title", "description", "created_at").
		From("seo_entries").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing seo list query")
		return nil, fmt.Errorf("error querying seo entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.SeoEntry{}
	for rows.Next() {
		entry := &models.SeoEntry{}
		if err := rows.Scan(&entry.ID, &entry.Page, &entry.Title, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning seo row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seo rows: %w", err)
	}

	return entries, nil
}

// GetByID returns a single entry.
func (r *SeoRepository) GetByID(ctx context.Context, id string) (*models.SeoEntry, error) {
	sql, args, err := r.sb.Select("id", "page", "title", "description", "created_at").
		From("seo_entries").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	entry := &models.SeoEntry{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.Page, &entry.Title, &entry.Description, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting seo entry: %w", err)
	}

	return entry, nil
}

// Create inserts a new entry, assigning its id and creation time.
func (r *SeoRepository) Create(ctx context.Context, entry *models.SeoEntry) error {
	entry.ID = uuid.NewString()

	sql, args, err := r.sb.Insert("seo_entries").
		Columns("id", "page", "title", "description").
		Values(entry.ID, entry.Page, entry.Title, entry.Description).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing seo insert query")
		return fmt.Errorf("error creating seo entry: %w", err)
	}

	return nil
}

// Update overwrites the mutable columns of an existing entry.
func (r *SeoRepository) Update(ctx context.Context, entry *models.SeoEntry) error {
	sql, args, err := r.sb.Update("seo_entries").
		SetMap(map[string]interface{}{
			"page":        entry.Page,
			"title":       entry.Title,
			"description": entry.Description,
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", entry.ID).Msg("Error executing seo update query")
		return fmt.Errorf("error updating seo entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes an entry by id.
func (r *SeoRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("seo_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing seo delete query")
		return fmt.Errorf("error deleting seo entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
