package items

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

var columns = []string{"id", "name", "category", "problem", "answer", "side_note", "created_at",
	"last_accessed_at", "is_reviewed", "next_review_date", "review_dates", "archived"}

func reviewedItem() models.Item {
	return models.Item{
		ID:             "i1",
		Name:           "Binary search",
		Category:       "Algorithms",
		Problem:        models.Content{Text: "find x", URL: "https://example.org"},
		Answer:         models.Content{Text: "halve", Images: []string{"a.png"}},
		SideNote:       "note",
		CreatedAt:      calendar.MustParse("2024-06-01"),
		LastAccessedAt: calendar.Ptr(calendar.MustParse("2024-06-25")),
		IsReviewed:     true,
		NextReviewDate: calendar.Ptr(calendar.MustParse("2024-07-02")),
		ReviewDates:    []calendar.Day{calendar.MustParse("2024-06-25")},
	}
}

func TestList_ScansRows(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	rows := sqlmock.NewRows(columns).
		AddRow("i1", "Binary search", "Algorithms",
			[]byte(`{"text":"find x","url":"https://example.org"}`), []byte(`{"text":"halve","images":["a.png"]}`), "note",
			"2024-06-01", "2024-06-25", true, "2024-07-02", []byte(`["2024-06-25"]`), false).
		AddRow("i2", "", "Default", []byte(`{}`), []byte(`{}`), "", "2024-06-20", nil, false, nil, []byte(`[]`), false)

	mock.ExpectQuery(`SELECT .* FROM items WHERE archived = false OR \$1 ORDER BY created_at, id`).
		WithArgs(false).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, reviewedItem(), got[0])
	assert.Nil(t, got[1].NextReviewDate)
	assert.Nil(t, got[1].LastAccessedAt)
	assert.Empty(t, got[1].ReviewDates)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Errors(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM items`).WillReturnError(errors.New("db is down"))
	_, err := repo.List(context.Background(), true)
	assert.ErrorContains(t, err, "failed to select items")

	mock.ExpectQuery(`SELECT .* FROM items`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("i1", "", "c", []byte(`not json`), []byte(`{}`), "", "2024-06-01", nil, false, nil, []byte(`[]`), false))
	_, err = repo.List(context.Background(), true)
	assert.ErrorContains(t, err, "decode problem of i1")
}

func TestGet(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM items WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))
	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(`SELECT .* FROM items WHERE id = \$1`).
		WithArgs("i2").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("i2", "", "Default", []byte(`{}`), []byte(`{}`), "", "2024-06-20", nil, false, nil, []byte(`[]`), true))
	got, err := repo.Get(context.Background(), "i2")
	require.NoError(t, err)
	assert.True(t, got.Archived)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_EncodesColumns(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO items \(.*\)\s+VALUES \(\$1, .*\$12\)`).
		WithArgs("i1", "Binary search", "Algorithms",
			`{"text":"find x","url":"https://example.org"}`, `{"text":"halve","images":["a.png"]}`, "note",
			"2024-06-01", "2024-06-25", true, "2024-07-02", `["2024-06-25"]`, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	it := reviewedItem()
	require.NoError(t, repo.Create(context.Background(), &it))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NewItemHasEmptyHistory(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO items`).
		WithArgs("n", "", "Default", `{}`, `{}`, "", "2024-06-25", nil, false, nil, `[]`, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	it := models.Item{ID: "n", Category: "Default", CreatedAt: calendar.MustParse("2024-06-25")}
	require.NoError(t, repo.Create(context.Background(), &it))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
		wantMsg string
	}{
		{name: "ok", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "db error", execErr: errors.New("db is down"), wantMsg: "db error: db is down"},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("rows-err")), wantMsg: "rows affected error"},
		{name: "too many rows", result: sqlmock.NewResult(0, 2), wantMsg: "unexpected rows affected: 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepoWithMock(t)

			exp := mock.ExpectExec(regexp.QuoteMeta(`UPDATE items SET name = $2`))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			it := reviewedItem()
			err := repo.Update(context.Background(), &it)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM items WHERE id = \$1`).WithArgs("i1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "i1"))

	mock.ExpectExec(`DELETE FROM items WHERE id = \$1`).WithArgs("i1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "i1"), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM items$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	mock.ExpectQuery(`SELECT count\(\*\) FROM items WHERE lower\(category\) = lower\(\$1\)`).
		WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	n, err = repo.CountByCategory(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mock.ExpectQuery(`SELECT count`).WillReturnError(errors.New("boom"))
	_, err = repo.Count(context.Background())
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRenameCategory(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE items SET category = \$2, updated_at = now\(\) WHERE category = \$1`).
		WithArgs("Go", "Golang").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.RenameCategory(context.Background(), "Go", "Golang")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
