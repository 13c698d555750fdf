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

// TitleRepository stores one of the title-only collections (courses,
// keywords).
type TitleRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	table string
}

// NewTitleRepository creates a TitleRepository over the given table.
func NewTitleRepository(db *pgxpool.Pool, table string) *TitleRepository {
	return &TitleRepository{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table: table,
	}
}

// List returns every entry, newest first.
func (r *TitleRepository) List(ctx context.Context) ([]*models.TitleEntry, error) {
	sql, args, err := r.sb.Select("id", "title", "created_at").
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

	entries := []*models.TitleEntry{}
	for rows.Next() {
		entry := &models.TitleEntry{}
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.CreatedAt); err != nil {
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
func (r *TitleRepository) GetByID(ctx context.Context, id string) (*models.TitleEntry, error) {
	sql, args, err := r.sb.Select("id", "title", "created_at").
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	entry := &models.TitleEntry{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.Title, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting %s entry: %w", r.table, err)
	}

	return entry, nil
}

// Create inserts a new entry, assigning its id and creation time.
func (r *TitleRepository) Create(ctx context.Context, entry *models.TitleEntry) error {
	entry.ID = uuid.NewString()

	sql, args, err := r.sb.Insert(r.table).
		Columns("id", "title").
		Values(entry.ID, entry.Title).
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

// Update overwrites the title of an existing entry.
func (r *TitleRepository) Update(ctx context.Context, entry *models.TitleEntry) error {
	sql, args, err := r.sb.Update(r.table).
		Set("title", entry.Title).
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
func (r *TitleRepository) Delete(ctx context.Context, id string) error {
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
