package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/app/repositories"
	"github.com/tahsin/scholarfolio/internal/config"
	"github.com/tahsin/scholarfolio/internal/pkg/auth"
)

// CreateAdminUser seeds the admin account from config when it does not
// exist yet. The site has a single admin; nothing else needs seeding.
func CreateAdminUser(ctx context.Context, repos *repositories.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured - skipping admin seed")
		return nil
	}

	exists, err := repos.UserRepository.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hash,
		Name:     cfg.Admin.Name,
		RoleType: models.RoleAdmin,
	}

	if _, err := repos.UserRepository.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin account seeded")
	return nil
}
