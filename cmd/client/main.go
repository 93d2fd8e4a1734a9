package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/mnemos/internal/client/cli"
	"github.com/dmitrijs2005/mnemos/internal/client/client"
	"github.com/dmitrijs2005/mnemos/internal/client/config"
	"github.com/dmitrijs2005/mnemos/internal/client/services"
	"github.com/dmitrijs2005/mnemos/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])

	if err := run(ctx, cfg); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(logging.FormatText, os.Stderr, cfg.Debug)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := client.InitDatabase(ctx, cfg.CacheDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	apiClient, err := client.NewMnemosClientService(cfg.ServerEndpointAddr)
	if err != nil {
		return err
	}
	defer apiClient.Close()

	study := services.NewStudyService(apiClient, services.NewSQLiteCache(db), logger, loc)
	return cli.NewApp(cfg, study, logger).Run(ctx)
}
