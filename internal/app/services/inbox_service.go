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

// ContactStore is the persistence surface for contact messages.
type ContactStore interface {
	List(ctx context.Context) ([]*models.ContactMessage, error)
	Create(ctx context.Context, message *models.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

// BookingStore is the persistence surface for bookings.
type BookingStore interface {
	List(ctx context.Context) ([]*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}

// InboxService handles the two intake collections: contact messages and
// course bookings. Both are written by public endpoints and read-only for
// staff, who can list and delete but never edit them.
type InboxService struct {
	contacts ContactStore
	bookings BookingStore
}

// NewInboxService creates a new InboxService.
func NewInboxService(contacts ContactStore, bookings BookingStore) *InboxService {
	return &InboxService{contacts: contacts, bookings: bookings}
}

// ListContacts returns every contact message, newest first.
func (s *InboxService) ListContacts(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// SubmitContact validates and stores a public contact form submission.
func (s *InboxService) SubmitContact(ctx context.Context, req *dto.ContactSubmitRequest) (*models.ContactMessage, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("email")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, apperrors.NewValidationError("subject")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewValidationError("message")
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, message); err != nil {
		return nil, err
	}

	logger.Info().Str("id", message.ID).Msg("Contact message received")
	return message, nil
}

// DeleteContact removes a contact message by id.
func (s *InboxService) DeleteContact(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError("Contact message")
		}
		return err
	}
	return nil
}

// ListBookings returns every booking, newest first, with course titles
// projected in.
func (s *InboxService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.bookings.List(ctx)
}

// SubmitBooking validates and stores a public course booking request. The
// course reference is optional; deleting the course later clears it and the
// booking surfaces with a missing course title.
func (s *InboxService) SubmitBooking(ctx context.Context, req *dto.BookingSubmitRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.Firstname) == "" {
		return nil, apperrors.NewValidationError("firstname")
	}
	if strings.TrimSpace(req.Lastname) == "" {
		return nil, apperrors.NewValidationError("lastname")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("email")
	}
	if strings.TrimSpace(req.Mobile) == "" {
		return nil, apperrors.NewValidationError("mobile")
	}

	booking := &models.Booking{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Message:   req.Message,
		CourseID:  req.CourseID,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info().Str("id", booking.ID).Msg("Booking received")
	return booking, nil
}

// DeleteBooking removes a booking by id.
func (s *InboxService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewNotFoundError("Booking")
		}
		return err
	}
	return nil
}
