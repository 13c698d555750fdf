package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// ContactRepository stores contact form messages. The admin surface only
// lists and deletes; Create serves the public intake endpoint.
type ContactRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every message, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "subject", "message", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing contact list query")
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		msg := &models.ContactMessage{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning contact row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return messages, nil
}

// Create inserts a submitted message, assigning its id and creation time.
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = uuid.NewString()

	sql, args, err := r.sb.Insert("contact_messages").
		Columns("id", "name", "email", "subject", "message").
		Values(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&msg.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing contact insert query")
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}

// Delete removes a message by id.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("contact_messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing contact delete query")
		return fmt.Errorf("error deleting contact message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
