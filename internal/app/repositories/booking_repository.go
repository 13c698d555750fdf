package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// noCourseTitle is projected onto bookings whose course is gone.
const noCourseTitle = "No course title"

// BookingRepository stores course booking requests. The list projects the
// referenced course title onto each row; this is the only cross-entity read
// in the system.
type BookingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every booking, newest first, with the course title joined in.
func (r *BookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	query, args, err := r.sb.Select(
		"b.id", "b.firstname", "b.lastname", "b.email", "b.mobile", "b.message",
		"b.course_id", "c.title", "b.created_at").
		From("bookings b").
		LeftJoin("courses c ON c.id = b.course_id").
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing booking list query")
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking := &models.Booking{}
		var courseID, courseTitle sql.NullString
		if err := rows.Scan(&booking.ID, &booking.Firstname, &booking.Lastname, &booking.Email,
			&booking.Mobile, &booking.Message, &courseID, &courseTitle, &booking.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		projectCourse(booking, courseID, courseTitle)
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// projectCourse maps the joined course columns onto a booking row. A
// deleted or never-set course leaves both columns NULL and the booking
// surfaces with the fallback title.
func projectCourse(booking *models.Booking, courseID, courseTitle sql.NullString) {
	booking.CourseID = courseID.String
	booking.CourseTitle = noCourseTitle
	if courseTitle.Valid {
		booking.CourseTitle = courseTitle.String
	}
}

// Create inserts a submitted booking, assigning its id and creation time.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.NewString()

	var courseID interface{}
	if booking.CourseID != "" {
		courseID = booking.CourseID
	}

	query, args, err := r.sb.Insert("bookings").
		Columns("id", "firstname", "lastname", "email", "mobile", "message", "course_id").
		Values(booking.ID, booking.Firstname, booking.Lastname, booking.Email,
			booking.Mobile, booking.Message, courseID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&booking.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing booking insert query")
		return fmt.Errorf("error creating booking: %w", err)
	}

	return nil
}

// Delete removes a booking by id.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error executing booking delete query")
		return fmt.Errorf("error deleting booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
