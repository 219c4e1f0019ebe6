package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/handler"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/server"
	"github.com/MKhiriev/go-circuit-records/internal/service"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/workers"
	"github.com/MKhiriev/go-circuit-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	ctx := context.Background()
	log := logger.NewLogger("circuit-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	hasher := workers.NewHashingPool(cfg.Workers.HashingConcurrency)

	services, err := service.NewServices(storages, hasher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.BootstrapService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating default admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}

	return value
}
