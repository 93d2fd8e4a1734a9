package items

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE items (
  id       TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  data     TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sample(id string) models.Item {
	next := calendar.MustParse("2024-07-02")
	return models.Item{
		ID:             id,
		Name:           "item " + id,
		Category:       "Default",
		Problem:        models.Content{Text: "2+2", Images: []string{"a.png"}},
		CreatedAt:      calendar.MustParse("2024-06-01"),
		IsReviewed:     true,
		NextReviewDate: &next,
		ReviewDates:    []calendar.Day{calendar.MustParse("2024-06-25")},
	}
}

func TestPutAndList_KeepsOrderAndContent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sample("b")))
	require.NoError(t, r.Put(ctx, sample("a")))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Empty(t, cmp.Diff(sample("a"), got[1]))
}

func TestPut_UpsertKeepsPosition(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sample("a")))
	require.NoError(t, r.Put(ctx, sample("b")))

	changed := sample("a")
	changed.Name = "renamed"
	require.NoError(t, r.Put(ctx, changed))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "renamed", got[0].Name)
}

func TestList_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, sample("a")))
	require.NoError(t, r.Put(ctx, sample("b")))

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, r.Clear(ctx))
	got, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Put(ctx, sample("a"))
	})
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestList_CorruptRow(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO items (id, position, data) VALUES ('x', 1, '{broken')`)
	require.NoError(t, err)

	_, err = NewSQLiteRepository(db).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode item x")
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.List(ctx)
	assert.ErrorContains(t, err, "failed to select items")
	assert.ErrorContains(t, r.Put(ctx, sample("a")), "failed to put item a")
	assert.ErrorContains(t, r.Delete(ctx, "a"), "failed to delete item a")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear items")
}
