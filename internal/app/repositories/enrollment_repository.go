package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/db"
	"github.com/aortega/tutorhub/internal/pkg/helpers"
	"github.com/aortega/tutorhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// EnrollmentRepository owns the transactional tutor enrollment write path.
// Every call runs on one exclusive pooled connection: tutor insert, optional
// city/course resolution, location insert and student insert commit together
// or not at all.
type EnrollmentRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(beginner db.TxBeginner) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: beginner,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnrollTutor atomically persists a tutor and, when a student payload with a
// non-empty name is present, a location and a student row. City and course
// names that have no matching reference row yield NULL foreign keys instead
// of aborting. Any store failure rolls back the whole transaction; the
// pooled connection is released on every exit path.
func (r *EnrollmentRepository) EnrollTutor(ctx context.Context, enr *models.TutorEnrollment) (*models.EnrollmentResult, error) {
	result := &models.EnrollmentResult{}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tutorID, err := r.insertTutor(ctx, tx, &enr.Tutor)
		if err != nil {
			return err
		}
		result.TutorID = tutorID

		if enr.Student == nil || strings.TrimSpace(enr.Student.Name) == "" {
			return nil
		}

		cityID, err := r.lookupCityID(ctx, tx, enr.CityName)
		if err != nil {
			return err
		}
		result.CityResolved = cityID != nil

		courseID, err := r.lookupCourseID(ctx, tx, enr.Student.CourseName)
		if err != nil {
			return err
		}
		result.CourseResolved = courseID != nil

		locationID, err := r.insertLocation(ctx, tx, enr.Student, cityID)
		if err != nil {
			return err
		}
		result.LocationID = &locationID

		studentID, err := r.insertStudent(ctx, tx, enr.Student, tutorID, courseID, locationID)
		if err != nil {
			return err
		}
		result.StudentID = &studentID

		return nil
	})

	if err != nil {
		logger.Error().Err(err).Str("tutorEmail", enr.Tutor.Email).Msg("Enrollment transaction aborted, rolled back")
		return nil, err
	}

	return result, nil
}

// insertTutor inserts the tutor row and returns the generated identifier.
func (r *EnrollmentRepository) insertTutor(ctx context.Context, tx pgx.Tx, tutor *models.Tutor) (int64, error) {
	sql, args, err := r.sb.Insert("tutor").
		Columns("nombre", "apellidos", "genero", "telefono", "correo_electronico", "nif", "direccion_facturacion").
		Values(
			tutor.Name,
			tutor.Surname,
			helpers.GetContentNullString(tutor.Gender),
			helpers.GetContentNullString(tutor.Phone),
			tutor.Email,
			helpers.GetContentNullString(tutor.NIF),
			helpers.GetContentNullString(tutor.BillingAddress),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert tutor query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating tutor: %w", err)
	}
	return id, nil
}

// lookupCityID resolves a city name to its identifier. A missing name or a
// reference miss is tolerated and returns nil, never an error.
func (r *EnrollmentRepository) lookupCityID(ctx context.Context, tx pgx.Tx, name *string) (*int64, error) {
	return r.lookupReferenceID(ctx, tx, "ciudad", name)
}

// lookupCourseID resolves a course name to its identifier, with the same
// miss tolerance as lookupCityID.
func (r *EnrollmentRepository) lookupCourseID(ctx context.Context, tx pgx.Tx, name *string) (*int64, error) {
	return r.lookupReferenceID(ctx, tx, "curso", name)
}

func (r *EnrollmentRepository) lookupReferenceID(ctx context.Context, tx pgx.Tx, table string, name *string) (*int64, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}

	sql, args, err := r.sb.Select("id").
		From(table).
		Where(squirrel.Eq{"nombre": strings.TrimSpace(*name)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s lookup query: %w", table, err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Warn().Str("table", table).Str("name", *name).Msg("Reference data miss, persisting NULL foreign key")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error resolving %s %q: %w", table, *name, err)
	}
	return &id, nil
}

// insertLocation inserts the location row for the student and returns the
// generated identifier. All address fields default to NULL when absent.
func (r *EnrollmentRepository) insertLocation(ctx context.Context, tx pgx.Tx, student *models.StudentEnrollment, cityID *int64) (int64, error) {
	sql, args, err := r.sb.Insert("localizacion").
		Columns("distrito", "barrio", "codigo_postal", "id_ciudad").
		Values(
			helpers.GetNullString(student.District),
			helpers.GetNullString(student.Neighborhood),
			helpers.GetNullString(student.PostalCode),
			helpers.GetNullInt64(cityID),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert location query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating location: %w", err)
	}
	return id, nil
}

// insertStudent inserts the student row referencing the tutor and location
// identifiers generated earlier in the same transaction.
func (r *EnrollmentRepository) insertStudent(ctx context.Context, tx pgx.Tx, student *models.StudentEnrollment, tutorID int64, courseID *int64, locationID int64) (int64, error) {
	sql, args, err := r.sb.Insert("alumno").
		Columns("nombre", "apellidos", "direccion", "nif", "telefono", "genero", "id_tutor", "id_curso", "id_localizacion").
		Values(
			strings.TrimSpace(student.Name),
			helpers.GetNullString(student.Surname),
			helpers.GetNullString(student.Address),
			helpers.GetNullString(student.NIF),
			helpers.GetNullString(student.Phone),
			helpers.GetNullString(student.Gender),
			tutorID,
			helpers.GetNullInt64(courseID),
			locationID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert student query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}
