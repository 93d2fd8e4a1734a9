package items

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, data FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := []models.Item{}
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		var item models.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to decode item %s: %w", id, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, item models.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode item %s: %w", item.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO items (id, position, data)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM items), ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, item.ID, string(data))
	if err != nil {
		return fmt.Errorf("failed to put item %s: %w", item.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items`)
	if err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}
