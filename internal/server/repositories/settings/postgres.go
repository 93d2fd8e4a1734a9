// Package settings provides the PostgreSQL repository for the single row of
// grading intervals.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// PostgresRepository implements settings storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the stored settings, or the defaults when the row is missing.
func (r *PostgresRepository) Get(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	query := `SELECT confident_days, medium_days, wtf_days FROM settings WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.ConfidentDays, &s.MediumDays, &s.WtfDays)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(), nil
		}
		return s, fmt.Errorf("failed to select settings: %w", err)
	}
	return s, nil
}

// Save upserts the settings row.
func (r *PostgresRepository) Save(ctx context.Context, s models.Settings) error {
	query := `
		INSERT INTO settings (id, confident_days, medium_days, wtf_days)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			confident_days = EXCLUDED.confident_days,
			medium_days = EXCLUDED.medium_days,
			wtf_days = EXCLUDED.wtf_days,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, s.ConfidentDays, s.MediumDays, s.WtfDays); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
