package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

// SliderController exposes the homepage slider collection over HTTP.
type SliderController struct {
	service *services.SliderService
}

// NewSliderController creates a new SliderController.
func NewSliderController(service *services.SliderService) *SliderController {
	return &SliderController{service: service}
}

// List handles GET /slider.
func (c *SliderController) List(ctx *gin.Context) {
	sliders, err := c.service.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sliders)
}

// Create handles POST /slider. The body is multipart form data with an
// optional image part.
func (c *SliderController) Create(ctx *gin.Context) {
	var req dto.SliderCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	slider, err := c.service.Create(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, slider)
}

// Update handles PUT /slider/:id.
func (c *SliderController) Update(ctx *gin.Context) {
	var req dto.SliderUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	slider, err := c.service.Update(ctx, ctx.Param("id"), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, slider)
}

// Delete handles DELETE /slider/:id.
func (c *SliderController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Slider deleted successfully."})
}
