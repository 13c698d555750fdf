package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

// SeoController exposes the SEO metadata collection over HTTP.
type SeoController struct {
	service *services.SeoService
}

// NewSeoController creates a new SeoController.
func NewSeoController(service *services.SeoService) *SeoController {
	return &SeoController{service: service}
}

// List handles GET /seo.
func (c *SeoController) List(ctx *gin.Context) {
	entries, err := c.service.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Create handles POST /seo.
func (c *SeoController) Create(ctx *gin.Context) {
	var req dto.SeoCreateRequest
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

// Update handles PUT /seo/:id.
func (c *SeoController) Update(ctx *gin.Context) {
	var req dto.SeoUpdateRequest
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

// Delete handles DELETE /seo/:id.
func (c *SeoController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "SEO entry deleted successfully."})
}
