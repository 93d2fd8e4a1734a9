package client

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/models"
)

// Client is the persistence API the study service consumes.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	GetAllItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, id string, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) (models.Settings, error)

	GetCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
	RenameCategory(ctx context.Context, oldName, newName string) ([]string, error)
	DeleteCategory(ctx context.Context, name string) ([]string, error)
}
