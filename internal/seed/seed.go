package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/interncompass/api/internal/app/models"
	appRepos "github.com/interncompass/api/internal/app/repositories"
	"github.com/interncompass/api/internal/config"
)

// Default superuser credentials, overridable through the environment.
// The password default is for local development only.
const (
	defaultSuperuserEmail    = "admin@interncompass.io"
	defaultSuperuserUsername = "admin"
	defaultSuperuserPassword = "Admin123!"
)

// CreateDefaultData ensures the initial superuser account exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (superuser account)...")
	var finalErr error // To collect potential errors without stopping the process

	email := config.GetEnv("SEED_SUPERUSER_EMAIL", defaultSuperuserEmail)
	username := config.GetEnv("SEED_SUPERUSER_USERNAME", defaultSuperuserUsername)
	password := config.GetEnv("SEED_SUPERUSER_PASSWORD", defaultSuperuserPassword)

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if superuser exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Str("email", email).Msg("Creating default superuser...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing superuser password")
			finalErr = errors.Join(finalErr, err)
		} else {
			fullName := "System Administrator"
			superuser := &appModels.User{
				Email:       email,
				Username:    username,
				Password:    string(hashedPassword),
				FullName:    &fullName,
				IsActive:    true,
				IsSuperuser: true,
				CreatedAt:   time.Now(),
			}

			superuserID, err := userRepo.Create(ctx, superuser)
			if err != nil {
				lgr.Error().Err(err).Msg("Error creating superuser")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("userID", superuserID).Msg("Default superuser created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Superuser already exists, skipping creation")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr // Return collected errors, if any
}
