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

// CourseRepository handles course reference data, with the same lifecycle
// as CityRepository.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a course reference row
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("curso").
		Columns("nombre").
		Values(course.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("name", course.Name).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetAll retrieves all courses ordered by name
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "nombre").
		From("curso").
		OrderBy("nombre ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
