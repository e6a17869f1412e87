package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/aortega/tutorhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TutorRepository handles tutor read operations outside the enrollment
// transaction. Tutor rows are never updated or deleted.
type TutorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTutorRepository creates a new TutorRepository
func NewTutorRepository(db *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetTutorByID retrieves a tutor by ID
func (r *TutorRepository) GetTutorByID(ctx context.Context, id int64) (*models.Tutor, error) {
	sql, args, err := r.sb.Select("id", "nombre", "apellidos", "genero", "telefono", "correo_electronico", "nif", "direccion_facturacion").
		From("tutor").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get tutor by ID SQL")
		return nil, fmt.Errorf("failed to build get tutor query: %w", err)
	}

	tutor := &models.Tutor{}
	var gender, phone, nif, billing *string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tutor.ID, &tutor.Name, &tutor.Surname, &gender, &phone, &tutor.Email, &nif, &billing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTutorNotFound
		}
		logger.Error().Err(err).Int64("tutorID", id).Msg("Error scanning tutor row")
		return nil, fmt.Errorf("error getting tutor by ID: %w", err)
	}

	if gender != nil {
		tutor.Gender = *gender
	}
	if phone != nil {
		tutor.Phone = *phone
	}
	if nif != nil {
		tutor.NIF = *nif
	}
	if billing != nil {
		tutor.BillingAddress = *billing
	}

	return tutor, nil
}
