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

// ContentRepository stores one of the title/description/image collections.
// The table name is fixed at construction; blogs, services and abouts share
// this implementation.
type ContentRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	table string
}

// NewContentRepository creates a ContentRepository over the given table.
func NewContentRepository(db *pgxpool.Pool, table string) *ContentRepository {
	return &ContentRepository{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table: table,
	}
}

// List returns every entry, newest first.
func (r *ContentRepository) List(ctx context.Context) ([]*models.ContentEntry, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "image_url", "created_at").
		From(r.table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying %s: %w", r.table, err)
	}
	defer rows.Close()

	entries := []*models.ContentEntry{}
	for rows.Next() {
		entry := &models.ContentEntry{}
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Description, &entry.ImageURL, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", r.table, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}

	return entries, nil
}

// GetByID returns a single entry.
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*models.ContentEntry, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "image_url", "created_at").
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	entry := &models.ContentEntry{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.Title, &entry.Description, &entry.ImageURL, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("table", r.table).Str("id", id).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s entry: %w", r.table, err)
	}

	return entry, nil
}

// Create inserts a new entry, assigning its id and creation time.
func (r *ContentRepository) Create(ctx context.Context, entry *models.ContentEntry) error {
	entry.ID = uuid.NewString()

	sql, args, err := r.sb.Insert(r.table).
		Columns("id", "title", "description", "image_url").
		Values(entry.ID, entry.Title, entry.Description, entry.ImageURL).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.CreatedAt); err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing insert query")
		return fmt.Errorf("error creating %s entry: %w", r.table, err)
	}

	return nil
}

// Update overwrites the mutable columns of an existing entry.
func (r *ContentRepository) Update(ctx context.Context, entry *models.ContentEntry) error {
	sql, args, err := r.sb.Update(r.table).
		SetMap(map[string]interface{}{
			"title":       entry.Title,
			"description": entry.Description,
			"image_url":   entry.ImageURL,
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Str("id", entry.ID).Msg("Error executing update query")
		return fmt.Errorf("error updating %s entry: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes an entry by id.
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete(r.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Str("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s entry: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
