package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/app/services"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

// AuthController exposes staff login and logout.
type AuthController struct {
	service *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	resp, err := c.service.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout. It revokes the token the request was
// authenticated with.
func (c *AuthController) Logout(ctx *gin.Context) {
	tokenID := ctx.GetString(middleware.ContextTokenID)
	exp, _ := ctx.Get(middleware.ContextTokenExp)
	expiresAt, ok := exp.(time.Time)
	if tokenID == "" || !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	c.service.Logout(tokenID, expiresAt)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully."})
}
