package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/categories"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/items"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/settings"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repositories inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Items(db dbx.DBTX) items.Repository
	Categories(db dbx.DBTX) categories.Repository
	Settings(db dbx.DBTX) settings.Repository
}
