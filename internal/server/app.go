// Package server wires the Mnemos server: storage, services, the gRPC and
// REST listeners, the readiness gate and the optional S3 data snapshot.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/config"
	"github.com/dmitrijs2005/mnemos/internal/server/database"
	"github.com/dmitrijs2005/mnemos/internal/server/readiness"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mnemos/internal/server/services"
	"github.com/dmitrijs2005/mnemos/internal/server/snapshot"

	gs "github.com/dmitrijs2005/mnemos/internal/server/grpc"
	hs "github.com/dmitrijs2005/mnemos/internal/server/http"
)

const snapshotTimeout = 30 * time.Second

// dataPort is the part of DataService the bootstrap and shutdown use.
type dataPort interface {
	Export(ctx context.Context) (models.AppData, error)
	Import(ctx context.Context, data models.AppData) (bool, error)
}

// migrator runs schema migrations.
type migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	migrator  migrator
	gate      *readiness.Gate
	services  services.Set
	data      dataPort
	snapshots snapshot.Store
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, os.Stdout, false)
	if err != nil {
		return nil, err
	}

	loc, err := c.Location()
	if err != nil {
		return nil, fmt.Errorf("time zone: %w", err)
	}
	today := func() calendar.Day { return calendar.Today(time.Now, loc) }

	db, err := database.Open(c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	data := services.NewDataService(db, rm, time.Now)

	app := &App{
		config:   c,
		logger:   logger,
		db:       db,
		migrator: rm,
		gate:     &readiness.Gate{},
		data:     data,
		services: services.Set{
			Items:      services.NewItemService(db, rm, today),
			Settings:   services.NewSettingsService(db, rm),
			Categories: services.NewCategoryService(db, rm),
			Data:       data,
		},
	}

	if c.SnapshotsEnabled() {
		store, err := snapshot.NewS3Store(ctx, snapshot.Options{
			User:     c.S3User,
			Password: c.S3Password,
			Bucket:   c.S3Bucket,
			Region:   c.S3Region,
			Endpoint: c.S3Endpoint,
			Key:      c.S3Key,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("snapshot store: %w", err)
		}
		app.snapshots = store
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// bootstrap waits for the database, migrates it, restores the snapshot into
// an empty store and opens the gate.
func (app *App) bootstrap(ctx context.Context) error {
	if err := database.WaitReady(ctx, app.db, app.config.DatabaseWait, app.logger); err != nil {
		return err
	}

	if err := app.migrator.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if app.snapshots != nil {
		data, err := app.snapshots.Load(ctx)
		if err != nil {
			return err
		}
		if data != nil {
			imported, err := app.data.Import(ctx, *data)
			if err != nil {
				return fmt.Errorf("snapshot import: %w", err)
			}
			app.logger.Info(ctx, "snapshot checked", "imported", imported, "items", len(data.Items))
		}
	}

	app.gate.Open()
	app.logger.Info(ctx, "service ready")
	return nil
}

// saveSnapshot exports the data set to object storage. Called after the
// listeners stop.
func (app *App) saveSnapshot() {
	if app.snapshots == nil || !app.gate.Ready() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	data, err := app.data.Export(ctx)
	if err != nil {
		app.logger.Error(ctx, "snapshot export failed", "error", err.Error())
		return
	}
	if err := app.snapshots.Save(ctx, data); err != nil {
		app.logger.Error(ctx, "snapshot save failed", "error", err.Error())
		return
	}
	app.logger.Info(ctx, "snapshot saved", "items", len(data.Items))
}

// Run serves until a signal arrives or a listener fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.gate, app.services).Run(gctx)
	})
	g.Go(func() error {
		return hs.NewServer(app.config.HTTPAddr, app.logger, app.gate, app.services).Run(gctx)
	})
	g.Go(func() error {
		return app.bootstrap(gctx)
	})

	err := g.Wait()

	app.saveSnapshot()
	app.gate.Close()

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close error", "error", cerr.Error())
	}
	app.logger.Info(ctx, "app stopped")
	return err
}
