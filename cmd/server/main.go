package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/handler"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/server"
	"github.com/MKhiriev/asset-tracker/internal/service"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("asset-tracker-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("asset-tracker-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("token_issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AuthService.SeedUser(ctx, cfg.App.SeedUsername, cfg.App.SeedPassword); err != nil {
		log.Fatal().Err(err).Msg("error seeding user")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
