package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/categories"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
)

// ItemService manages study items.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	today       func() calendar.Day
	newID       func() string
}

// NewItemService constructs an ItemService. today supplies the creation date
// of new items.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager, today func() calendar.Day) *ItemService {
	return &ItemService{db: db, repomanager: m, today: today, newID: uuid.NewString}
}

// List returns the active (not archived) items.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.repomanager.Items(s.db).List(ctx, false)
}

// Create stores a new item. The server assigns the id and creation date and
// the item starts unreviewed and unscheduled. An unknown category is added to
// the category list.
func (s *ItemService) Create(ctx context.Context, in models.Item) (models.Item, error) {
	item := in.Clone()
	item.ID = s.newID()
	item.CreatedAt = s.today()
	item.LastAccessedAt = nil
	item.IsReviewed = false
	item.NextReviewDate = nil
	item.ReviewDates = []calendar.Day{}
	item.Archived = false

	return dbx.InTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (models.Item, error) {
		category, err := resolveCategory(ctx, s.repomanager.Categories(tx), item.Category)
		if err != nil {
			return models.Item{}, err
		}
		item.Category = category
		if err := s.repomanager.Items(tx).Create(ctx, &item); err != nil {
			return models.Item{}, err
		}
		return item, nil
	})
}

// Update replaces a stored item. The id and creation date cannot change,
// archived items cannot be updated and the review history may only grow.
func (s *ItemService) Update(ctx context.Context, id string, in models.Item) (models.Item, error) {
	item := in.Clone()
	if item.ReviewDates == nil {
		item.ReviewDates = []calendar.Day{}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		stored, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if stored.Archived {
			return common.ErrArchived
		}
		if !models.ExtendsHistory(stored.ReviewDates, item.ReviewDates) {
			return common.ErrHistoryRewrite
		}

		category, err := resolveCategory(ctx, s.repomanager.Categories(tx), item.Category)
		if err != nil {
			return err
		}

		item.ID = stored.ID
		item.CreatedAt = stored.CreatedAt
		item.Category = category
		return repo.Update(ctx, &item)
	})
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// Delete removes an item permanently.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Items(s.db).Delete(ctx, id)
}

// resolveCategory returns the stored spelling of name, registering it first
// when it is new. An empty name selects the default category.
func resolveCategory(ctx context.Context, repo categories.Repository, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = common.DefaultCategory
	}

	stored, err := repo.Find(ctx, name)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", err
	}

	if name != common.DefaultCategory {
		if name, err = models.ValidateCategoryName(name); err != nil {
			return "", err
		}
	}
	if err := repo.Ensure(ctx, name); err != nil {
		return "", fmt.Errorf("register category: %w", err)
	}
	return name, nil
}
