// Package categories provides the PostgreSQL repository for the category
// list. Names are unique case-insensitively and keep insertion order.
package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
)

const uniqueViolation = "23505"

// PostgresRepository implements category storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

// List returns category names in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Find returns the stored spelling of name, matched case-insensitively.
func (r *PostgresRepository) Find(ctx context.Context, name string) (string, error) {
	var stored string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM categories WHERE lower(name) = lower($1)`, name).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("failed to select category: %w", err)
	}
	return stored, nil
}

// Add appends a category. A case-insensitive duplicate yields
// common.ErrAlreadyExists.
func (r *PostgresRepository) Add(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES ($1)`, name); err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Ensure adds name unless a category with the same name already exists.
func (r *PostgresRepository) Ensure(ctx context.Context, name string) error {
	query := `INSERT INTO categories (name) VALUES ($1) ON CONFLICT ((lower(name))) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Rename changes a category name in place, keeping its position.
func (r *PostgresRepository) Rename(ctx context.Context, oldName, newName string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name = $2 WHERE name = $1`, oldName, newName)
	if err != nil {
		return mapWriteError(err)
	}
	return expectOne(res)
}

// Delete removes a category.
func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
