package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/ozan/alumnisphere/internal/app/models"
	appRepos "github.com/ozan/alumnisphere/internal/app/repositories"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/auth"
)

const defaultAdminEmail = "admin@alumnisphere.app"

// CreateDefaultData provisions a default admin account on first start so the
// directory can be administered before any registration happens. The password
// comes from SEED_ADMIN_PASSWORD; without it nothing is seeded.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		lgr.Debug().Msg("SEED_ADMIN_PASSWORD not set, skipping default admin seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Name:     "Administrator",
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Register(ctx, admin, nil); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
