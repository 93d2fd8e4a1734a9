// Package items provides the PostgreSQL repository for study items.
package items

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, name, category, problem, answer, side_note, created_at,
	last_accessed_at, is_reviewed, next_review_date, review_dates, archived`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.Item, error) {
	var (
		item                  models.Item
		problem, answer, hist []byte
		lastAccessed, next    sql.Null[calendar.Day]
	)
	if err := s.Scan(
		&item.ID, &item.Name, &item.Category, &problem, &answer, &item.SideNote, &item.CreatedAt,
		&lastAccessed, &item.IsReviewed, &next, &hist, &item.Archived,
	); err != nil {
		return item, err
	}

	if err := json.Unmarshal(problem, &item.Problem); err != nil {
		return item, fmt.Errorf("decode problem of %s: %w", item.ID, err)
	}
	if err := json.Unmarshal(answer, &item.Answer); err != nil {
		return item, fmt.Errorf("decode answer of %s: %w", item.ID, err)
	}
	if err := json.Unmarshal(hist, &item.ReviewDates); err != nil {
		return item, fmt.Errorf("decode review dates of %s: %w", item.ID, err)
	}
	if lastAccessed.Valid {
		item.LastAccessedAt = calendar.Ptr(lastAccessed.V)
	}
	if next.Valid {
		item.NextReviewDate = calendar.Ptr(next.V)
	}
	return item, nil
}

// args returns the column values of item in selectColumns order.
func args(item *models.Item) ([]any, error) {
	problem, err := json.Marshal(item.Problem)
	if err != nil {
		return nil, err
	}
	answer, err := json.Marshal(item.Answer)
	if err != nil {
		return nil, err
	}
	hist := item.ReviewDates
	if hist == nil {
		hist = []calendar.Day{}
	}
	reviewDates, err := json.Marshal(hist)
	if err != nil {
		return nil, err
	}
	return []any{
		item.ID, item.Name, item.Category, string(problem), string(answer), item.SideNote, item.CreatedAt.String(),
		optionalDay(item.LastAccessedAt), item.IsReviewed, optionalDay(item.NextReviewDate), string(reviewDates), item.Archived,
	}, nil
}

func optionalDay(d *calendar.Day) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// List returns items ordered by creation date, archived ones only when asked.
func (r *PostgresRepository) List(ctx context.Context, includeArchived bool) ([]models.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM items WHERE archived = false OR $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the item with the given id or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT ` + selectColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select item: %w", err)
	}
	return &item, nil
}

// Create inserts a new item.
func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) error {
	query := `INSERT INTO items (` + selectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	a, err := args(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, a...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update replaces every column of an existing item.
func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) error {
	query := `UPDATE items SET name = $2, category = $3, problem = $4, answer = $5, side_note = $6,
		created_at = $7, last_accessed_at = $8, is_reviewed = $9, next_review_date = $10,
		review_dates = $11, archived = $12, updated_at = now()
		WHERE id = $1`

	a, err := args(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, a...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// Delete removes an item.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
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
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Count returns the number of stored items, archived ones included.
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

// CountByCategory counts items of a category, compared case-insensitively.
func (r *PostgresRepository) CountByCategory(ctx context.Context, category string) (int, error) {
	var n int
	query := `SELECT count(*) FROM items WHERE lower(category) = lower($1)`
	if err := r.db.QueryRowContext(ctx, query, category).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

// RenameCategory moves every item of oldName to newName and returns the
// number of items changed.
func (r *PostgresRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	query := `UPDATE items SET category = $2, updated_at = now() WHERE category = $1`
	res, err := r.db.ExecContext(ctx, query, oldName, newName)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
