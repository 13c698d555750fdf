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

// SliderRepository stores homepage slider entries.
type SliderRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSliderRepository creates a new SliderRepository.
func NewSliderRepository(db *pgxpool.Pool) *SliderRepository {
	return &SliderRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every slider, newest first.
func (r *SliderRepository) List(ctx context.Context) ([]*models.Slider, error) {
	sql, args, err := r.sb.Select("id", "title", "image_url", "created_at").
		From("sliders").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing slider list query")
		return nil, fmt.Errorf("error querying sliders: %w", err)
	}
	defer rows.Close()

	sliders := []*models.Slider{}
	for rows.Next() {
		slider := &models.Slider{}
		if err := rows.Scan(&slider.ID, &slider.Title, &slider.ImageURL, &slider.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning slider row: %w", err)
		}
		sliders = append(sliders, slider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slider rows: %w", err)
	}

	return sliders, nil
}

// GetByID returns a single slider.
func (r *SliderRepository) GetByID(ctx context.Context, id string) (*models.Slider, error) {
	sql, args, err := r.sb.Select("id", "title", "image_url", "created_at").
		From("sliders").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	slider := &models.Slider{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&slider.ID, &slider.Title, &slider.ImageURL, &slider.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting slider: %w", err)
	}

	return slider, nil
}

// Create inserts a new slider, assigning its id and creation time.
func (r *SliderRepository) Create(ctx context.Context, slider *models.Slider) error {
	slider.ID = uuid.NewString()

	sql, args, err := r.sb.Insert("sliders").
		Columns("id", "title", "image_url").
		Values(slider.ID, slider.Title, slider.ImageURL).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&slider.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing slider insert query")
		return fmt.Errorf("error creating slider: %w", err)
	}

	return nil
}

// Update overwrites the mutable columns of an existing slider.
func (r *SliderRepository) Update(ctx context.Context, slider *models.Slider) error {
	sql, args, err := r.sb.Update("sliders").
		SetMap(map[string]interface{}{
			"title":     slider.Title,
			"image_url": slider.ImageURL,
		}).
		Where(squirrel.Eq{"id": slider.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", slider.ID).Msg("Error executing slider update query")
		return fmt.Errorf("error updating slider: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a slider by id.
func (r *SliderRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("sliders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing slider delete query")
		return fmt.Errorf("error deleting slider: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
