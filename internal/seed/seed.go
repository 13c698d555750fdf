package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/repositories"
	"github.com/ozgurweb/sitepanel/internal/config"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
	"github.com/ozgurweb/sitepanel/internal/pkg/logger"
)

// EnsureAdminUser creates the configured admin account if no user with that
// email exists yet. Without it a fresh install has no way to log in.
func EnsureAdminUser(ctx context.Context, users *repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	_, err := users.GetByEmail(ctx, cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
	}
	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("email", admin.Email).Msg("Admin user seeded")
	return nil
}
