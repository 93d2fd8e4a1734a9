package items

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/models"
)

type Repository interface {
	List(ctx context.Context, includeArchived bool) ([]models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
}
