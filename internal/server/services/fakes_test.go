package services

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/categories"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/items"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/settings"
)

// -------- test fakes --------

type store struct {
	items      []models.Item
	categories []string
	settings   models.Settings

	failWrites error
}

type fakeItemsRepo struct{ s *store }

func (f *fakeItemsRepo) List(_ context.Context, includeArchived bool) ([]models.Item, error) {
	out := []models.Item{}
	for _, it := range f.s.items {
		if includeArchived || !it.Archived {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

func (f *fakeItemsRepo) Get(_ context.Context, id string) (*models.Item, error) {
	k := models.FindItem(f.s.items, id)
	if k < 0 {
		return nil, common.ErrorNotFound
	}
	it := f.s.items[k].Clone()
	return &it, nil
}

func (f *fakeItemsRepo) Create(_ context.Context, item *models.Item) error {
	if f.s.failWrites != nil {
		return f.s.failWrites
	}
	f.s.items = append(f.s.items, item.Clone())
	return nil
}

func (f *fakeItemsRepo) Update(_ context.Context, item *models.Item) error {
	if f.s.failWrites != nil {
		return f.s.failWrites
	}
	k := models.FindItem(f.s.items, item.ID)
	if k < 0 {
		return common.ErrorNotFound
	}
	f.s.items[k] = item.Clone()
	return nil
}

func (f *fakeItemsRepo) Delete(_ context.Context, id string) error {
	k := models.FindItem(f.s.items, id)
	if k < 0 {
		return common.ErrorNotFound
	}
	f.s.items = slices.Delete(f.s.items, k, k+1)
	return nil
}

func (f *fakeItemsRepo) Count(context.Context) (int, error) {
	return len(f.s.items), nil
}

func (f *fakeItemsRepo) CountByCategory(_ context.Context, category string) (int, error) {
	n := 0
	for _, it := range f.s.items {
		if strings.EqualFold(it.Category, category) {
			n++
		}
	}
	return n, nil
}

func (f *fakeItemsRepo) RenameCategory(_ context.Context, oldName, newName string) (int64, error) {
	var n int64
	for k := range f.s.items {
		if f.s.items[k].Category == oldName {
			f.s.items[k].Category = newName
			n++
		}
	}
	return n, nil
}

type fakeCategoriesRepo struct{ s *store }

func (f *fakeCategoriesRepo) List(context.Context) ([]string, error) {
	return slices.Clone(f.s.categories), nil
}

func (f *fakeCategoriesRepo) Find(_ context.Context, name string) (string, error) {
	for _, c := range f.s.categories {
		if strings.EqualFold(c, name) {
			return c, nil
		}
	}
	return "", common.ErrorNotFound
}

func (f *fakeCategoriesRepo) Add(ctx context.Context, name string) error {
	if _, err := f.Find(ctx, name); err == nil {
		return common.ErrAlreadyExists
	}
	f.s.categories = append(f.s.categories, name)
	return nil
}

func (f *fakeCategoriesRepo) Ensure(ctx context.Context, name string) error {
	if _, err := f.Find(ctx, name); err == nil {
		return nil
	}
	f.s.categories = append(f.s.categories, name)
	return nil
}

func (f *fakeCategoriesRepo) Rename(_ context.Context, oldName, newName string) error {
	k := slices.Index(f.s.categories, oldName)
	if k < 0 {
		return common.ErrorNotFound
	}
	f.s.categories[k] = newName
	return nil
}

func (f *fakeCategoriesRepo) Delete(_ context.Context, name string) error {
	k := slices.Index(f.s.categories, name)
	if k < 0 {
		return common.ErrorNotFound
	}
	f.s.categories = slices.Delete(f.s.categories, k, k+1)
	return nil
}

type fakeSettingsRepo struct{ s *store }

func (f *fakeSettingsRepo) Get(context.Context) (models.Settings, error) {
	return f.s.settings, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s models.Settings) error {
	if f.s.failWrites != nil {
		return f.s.failWrites
	}
	f.s.settings = s
	return nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	s *store
}

func (m *fakeRepoManager) Items(dbx.DBTX) items.Repository           { return &fakeItemsRepo{m.s} }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository { return &fakeCategoriesRepo{m.s} }
func (m *fakeRepoManager) Settings(dbx.DBTX) settings.Repository     { return &fakeSettingsRepo{m.s} }

var t0 = calendar.MustParse("2024-06-25")

func newStore() *store {
	return &store{categories: []string{common.DefaultCategory}, settings: models.DefaultSettings()}
}

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func expectCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}
