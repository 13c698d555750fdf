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

// TitleController exposes a title-only collection over HTTP. Courses and
// keywords each mount their own instance.
type TitleController struct {
	service *services.TitleService
}

// NewTitleController creates a new TitleController.
func NewTitleController(service *services.TitleService) *TitleController {
	return &TitleController{service: service}
}

// List handles GET on the collection.
func (c *TitleController) List(ctx *gin.Context) {
	entries, err := c.service.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Create handles POST on the collection.
func (c *TitleController) Create(ctx *gin.Context) {
	var req dto.TitleCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	entry, err := c.service.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// Update handles PUT on a single entry.
func (c *TitleController) Update(ctx *gin.Context) {
	var req dto.TitleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	entry, err := c.service.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// Delete handles DELETE on a single entry.
func (c *TitleController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("%s deleted successfully.", c.service.Entity()),
	})
}
