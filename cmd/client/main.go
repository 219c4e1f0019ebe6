package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-circuit-records/internal/adapter"
	"github.com/MKhiriev/go-circuit-records/internal/client"
	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverAddress := flag.String("server", "", "base URL of the circuit records server")
	verbose := flag.Bool("v", false, "verbose logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: circuit-client [-server URL] [-v] <command> [flags]\n\n%s\n", client.Usage)
	}
	flag.Parse()

	log := logger.NewClientLogger("circuit-client", *verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *serverAddress != "" {
		cfg.Adapter.HTTPAddress = *serverAddress
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(serverAdapter, buildInfo, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if client.IsUsageError(err) {
			flag.Usage()
			stop()
			os.Exit(2)
		}
		stop()
		os.Exit(1)
	}
}
