package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

// ContentController exposes one title/description/image collection over
// HTTP. Blogs, services and abouts each mount their own instance.
type ContentController struct {
	service *services.ContentService
}

// NewContentController creates a new ContentController.
func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{service: service}
}

// List handles GET on the collection.
func (c *ContentController) List(ctx *gin.Context) {
	entries, err := c.service.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Create handles POST on the collection. The body is multipart form data
// with an optional image part.
func (c *ContentController) Create(ctx *gin.Context) {
	var req dto.ContentCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	entry, err := c.service.Create(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// Update handles PUT on a single entry. Absent form fields keep their
// stored values.
func (c *ContentController) Update(ctx *gin.Context) {
	var req dto.ContentUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	entry, err := c.service.Update(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// Delete handles DELETE on a single entry.
func (c *ContentController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("%s deleted successfully.", c.service.Entity()),
	})
}
