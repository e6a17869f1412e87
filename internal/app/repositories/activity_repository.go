package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aortega/tutorhub/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository appends rows to the 'registro_actividad' audit table.
// The table is append-only; nothing in the application reads it back.
type ActivityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append records one activity event. Runs outside the enrollment
// transaction; callers treat a failure here as non-fatal.
func (r *ActivityRepository) Append(ctx context.Context, event, detail string) error {
	sql, args, err := r.sb.Insert("registro_actividad").
		Columns("evento", "detalle", "creado_en").
		Values(event, detail, time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build append activity query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("event", event).Msg("Error appending activity record")
		return fmt.Errorf("error appending activity record: %w", err)
	}

	return nil
}
