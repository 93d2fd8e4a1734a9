package services

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/models"
)

// Items is the item API used by the transports.
type Items interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, in models.Item) (models.Item, error)
	Update(ctx context.Context, id string, in models.Item) (models.Item, error)
	Delete(ctx context.Context, id string) error
}

// Settings is the settings API used by the transports.
type Settings interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, in models.Settings) (models.Settings, error)
}

// Categories is the category API used by the transports.
type Categories interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) ([]string, error)
	Rename(ctx context.Context, oldName, newName string) ([]string, error)
	Delete(ctx context.Context, name string) ([]string, error)
}

// Data is the export API used by the transports.
type Data interface {
	Export(ctx context.Context) (models.AppData, error)
}

// Set bundles the services exposed by a transport.
type Set struct {
	Items      Items
	Settings   Settings
	Categories Categories
	Data       Data
}

var (
	_ Items      = (*ItemService)(nil)
	_ Settings   = (*SettingsService)(nil)
	_ Categories = (*CategoryService)(nil)
	_ Data       = (*DataService)(nil)
)
