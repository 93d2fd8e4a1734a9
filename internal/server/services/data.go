package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
)

// DataService exports and imports the whole data set.
type DataService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDataService(db *sql.DB, m repomanager.RepositoryManager, now func() time.Time) *DataService {
	return &DataService{db: db, repomanager: m, now: now}
}

// Export returns every item, archived ones included, with categories and
// settings.
func (s *DataService) Export(ctx context.Context) (models.AppData, error) {
	var data models.AppData

	items, err := s.repomanager.Items(s.db).List(ctx, true)
	if err != nil {
		return data, err
	}
	cats, err := s.repomanager.Categories(s.db).List(ctx)
	if err != nil {
		return data, err
	}
	settings, err := s.repomanager.Settings(s.db).Get(ctx)
	if err != nil {
		return data, err
	}

	return models.AppData{
		Items:       items,
		Categories:  cats,
		Settings:    settings,
		LastUpdated: s.now().UTC(),
	}, nil
}

// Import loads data into an empty store and reports whether it did. A store
// that already holds items is left untouched. Invalid settings in data are
// replaced by the defaults.
func (s *DataService) Import(ctx context.Context, data models.AppData) (bool, error) {
	n, err := s.repomanager.Items(s.db).Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	settings := data.Settings
	if settings.Validate() != nil {
		settings = models.DefaultSettings()
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cats := s.repomanager.Categories(tx)
		for _, c := range data.Categories {
			if err := cats.Ensure(ctx, c); err != nil {
				return err
			}
		}

		items := s.repomanager.Items(tx)
		for _, it := range data.Items {
			it := it.Clone()
			if it.ReviewDates == nil {
				it.ReviewDates = []calendar.Day{}
			}
			if err := cats.Ensure(ctx, it.Category); err != nil {
				return err
			}
			if err := items.Create(ctx, &it); err != nil {
				return err
			}
		}

		return s.repomanager.Settings(tx).Save(ctx, settings)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
