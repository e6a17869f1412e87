package seed

import (
	"context"
	"errors"

	appModels "github.com/aortega/tutorhub/internal/app/models"
	appRepos "github.com/aortega/tutorhub/internal/app/repositories"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Default reference data. City and course rows are created out-of-band and
// never mutated by the application; re-running the seeder is a no-op.
var (
	defaultCities = []string{"Madrid", "Barcelona", "Valencia", "Sevilla"}

	defaultCourses = []string{"1ESO", "2ESO", "3ESO", "4ESO", "1BACH", "2BACH"}
)

// CreateDefaultData creates default cities and courses if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	cityRepo := appRepos.NewCityRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default reference data (cities/courses)...")
	var finalErr error

	for _, name := range defaultCities {
		_, err := cityRepo.Create(ctx, &appModels.City{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrCityAlreadyExists) {
			lgr.Error().Err(err).Str("city", name).Msg("Error creating default city")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range defaultCourses {
		_, err := courseRepo.Create(ctx, &appModels.Course{Name: name})
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("course", name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default reference data check/creation finished.")
	return finalErr
}
