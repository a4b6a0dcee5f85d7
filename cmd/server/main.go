package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cfelipe-app/Route/internal/api"
	"github.com/cfelipe-app/Route/internal/config"
	"github.com/cfelipe-app/Route/internal/metrics"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/storage/memory"
	"github.com/cfelipe-app/Route/internal/storage/mysql"
	"github.com/cfelipe-app/Route/internal/storage/postgres"
	"github.com/cfelipe-app/Route/internal/task"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Initialize the configured storage driver
	log.Info().Str("driver", cfg.StorageDriver).Msg("initializing storage driver...")
	driver := newStorageDriver(cfg)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	defer driver.Close()

	// Schedule a task that publishes the amount of capacity requests per status
	collectors := metrics.New()
	summaryTask := task.NewRepeating(func() {
		summary, err := driver.CapacityRequests().Summary(context.Background(), nil, nil)
		if err != nil {
			log.Error().Err(err).Msg("could not summarize the capacity requests")
			return
		}
		collectors.SetCapacitySummary(summary)
		log.Debug().Uint64("total", summary.Total).Msg("refreshed the capacity request summary")
	}, cfg.SummaryRefreshInterval)
	summaryTask.Start(true)
	defer summaryTask.Stop(false)

	// Start up the logistics API
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up the logistics API...")
	apis := &api.Service{
		Config:  cfg,
		Storage: driver,
		Metrics: collectors,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the logistics API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}

func newStorageDriver(cfg *config.Config) storage.Driver {
	switch cfg.StorageDriver {
	case config.StorageDriverMySQL:
		return mysql.New(cfg.MySQLDSN)
	case config.StorageDriverMemory:
		return memory.New()
	default:
		return postgres.New(cfg.PostgresDSN)
	}
}
