package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/aortega/tutorhub/internal/pkg/dberrors"
	"github.com/aortega/tutorhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CityRepository handles city reference data. Rows are created by the
// seeder and only ever read through the API.
type CityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCityRepository creates a new CityRepository
func NewCityRepository(db *pgxpool.Pool) *CityRepository {
	return &CityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a city reference row
func (r *CityRepository) Create(ctx context.Context, city *models.City) (int64, error) {
	sql, args, err := r.sb.Insert("ciudad").
		Columns("nombre").
		Values(city.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create city SQL")
		return 0, fmt.Errorf("failed to build create city query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCityAlreadyExists
		}
		logger.Error().Err(err).Str("name", city.Name).Msg("Error executing create city query")
		return 0, fmt.Errorf("error creating city: %w", err)
	}

	return id, nil
}

// GetAll retrieves all cities ordered by name
func (r *CityRepository) GetAll(ctx context.Context) ([]*models.City, error) {
	sql, args, err := r.sb.Select("id", "nombre").
		From("ciudad").
		OrderBy("nombre ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all cities SQL")
		return nil, fmt.Errorf("failed to build get all cities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all cities query")
		return nil, fmt.Errorf("error querying cities: %w", err)
	}
	defer rows.Close()

	cities := []*models.City{}
	for rows.Next() {
		city := &models.City{}
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("error scanning city row: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city rows: %w", err)
	}

	return cities, nil
}
