package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/asset-tracker/internal/adapter"
	"github.com/MKhiriev/asset-tracker/internal/client"
	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/service"
	"github.com/MKhiriev/asset-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("asset-tracker-client", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("asset-tracker-client", cfg.LogLevel)

	args := flag.Args()
	if len(args) > 0 && args[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	app := client.NewApp(services, cfg.Credentials, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
