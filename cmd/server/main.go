package main

import (
	"fmt"

	"github.com/MKhiriev/go-item-service/internal/config"
	handlerhttp "github.com/MKhiriev/go-item-service/internal/handler/http"
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/metrics"
	"github.com/MKhiriev/go-item-service/internal/server"
	"github.com/MKhiriev/go-item-service/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("item-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(cfg.App, log)
	metricsManager := metrics.NewManager()

	handler := handlerhttp.NewHandler(services, metricsManager, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
