package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/client/repositories/items"
	"github.com/dmitrijs2005/mnemos/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

// Snapshot is the last state fetched from the server.
type Snapshot struct {
	Items      []models.Item
	Settings   models.Settings
	Categories []string
	SyncedAt   time.Time
}

// Cache keeps a local copy of the server state for offline reading.
type Cache interface {
	// Load returns nil, nil when nothing was cached yet.
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
	PutItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id string) error
	SaveSettings(ctx context.Context, s models.Settings) error
	SaveCategories(ctx context.Context, c []string) error
}

// SQLiteCache is a Cache over the client database.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(db *sql.DB) *SQLiteCache {
	return &SQLiteCache{db: db}
}

func (c *SQLiteCache) Load(ctx context.Context) (*Snapshot, error) {
	meta := metadata.NewSQLiteRepository(c.db)

	var syncedAt time.Time
	ok, err := metadata.GetJSON(ctx, meta, metadata.KeyLastSync, &syncedAt)
	if err != nil || !ok {
		return nil, err
	}

	s := &Snapshot{SyncedAt: syncedAt, Settings: models.DefaultSettings()}
	if _, err := metadata.GetJSON(ctx, meta, metadata.KeySettings, &s.Settings); err != nil {
		return nil, err
	}
	if _, err := metadata.GetJSON(ctx, meta, metadata.KeyCategories, &s.Categories); err != nil {
		return nil, err
	}

	s.Items, err = items.NewSQLiteRepository(c.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save replaces the whole cache in one transaction. Metadata keys not
// written by this snapshot are dropped.
func (c *SQLiteCache) Save(ctx context.Context, s Snapshot) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := items.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for _, it := range s.Items {
			if err := repo.Put(ctx, it); err != nil {
				return err
			}
		}

		meta := metadata.NewSQLiteRepository(tx)
		if err := meta.Clear(ctx); err != nil {
			return err
		}
		if err := metadata.SetJSON(ctx, meta, metadata.KeySettings, s.Settings); err != nil {
			return err
		}
		if err := metadata.SetJSON(ctx, meta, metadata.KeyCategories, s.Categories); err != nil {
			return err
		}
		return metadata.SetJSON(ctx, meta, metadata.KeyLastSync, s.SyncedAt)
	})
}

func (c *SQLiteCache) PutItem(ctx context.Context, item models.Item) error {
	return items.NewSQLiteRepository(c.db).Put(ctx, item)
}

func (c *SQLiteCache) DeleteItem(ctx context.Context, id string) error {
	return items.NewSQLiteRepository(c.db).Delete(ctx, id)
}

func (c *SQLiteCache) SaveSettings(ctx context.Context, s models.Settings) error {
	return metadata.SetJSON(ctx, metadata.NewSQLiteRepository(c.db), metadata.KeySettings, s)
}

func (c *SQLiteCache) SaveCategories(ctx context.Context, cats []string) error {
	return metadata.SetJSON(ctx, metadata.NewSQLiteRepository(c.db), metadata.KeyCategories, cats)
}
