package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// UserStore is the persistence surface the AuthService needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService authenticates staff accounts and manages their tokens.
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
	blacklist  *auth.TokenBlacklist
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, jwtService *auth.JWTService, blacklist *auth.TokenBlacklist) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Login verifies credentials and issues an access token. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("email")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", user.Email).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Email:     user.Email,
	}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(tokenID string, expiresAt time.Time) {
	s.blacklist.Revoke(tokenID, expiresAt)
	logger.Info().Msg("User logged out")
}
