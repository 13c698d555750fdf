package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

// InboxController exposes the intake collections: the public contact and
// booking submission endpoints and the staff-only list/delete pairs.
type InboxController struct {
	service *services.InboxService
}

// NewInboxController creates a new InboxController.
func NewInboxController(service *services.InboxService) *InboxController {
	return &InboxController{service: service}
}

// ListContacts handles GET /contact.
func (c *InboxController) ListContacts(ctx *gin.Context) {
	messages, err := c.service.ListContacts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// SubmitContact handles the public POST /contact.
func (c *InboxController) SubmitContact(ctx *gin.Context) {
	var req dto.ContactSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	message, err := c.service.SubmitContact(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, message)
}

// DeleteContact handles DELETE /contact/:id.
func (c *InboxController) DeleteContact(ctx *gin.Context) {
	if err := c.service.DeleteContact(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact message deleted successfully."})
}

// ListBookings handles GET /booking.
func (c *InboxController) ListBookings(ctx *gin.Context) {
	bookings, err := c.service.ListBookings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

// SubmitBooking handles the public POST /booking.
func (c *InboxController) SubmitBooking(ctx *gin.Context) {
	var req dto.BookingSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	booking, err := c.service.SubmitBooking(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, booking)
}

// DeleteBooking handles DELETE /booking/:id.
func (c *InboxController) DeleteBooking(ctx *gin.Context) {
	if err := c.service.DeleteBooking(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Booking deleted successfully."})
}
