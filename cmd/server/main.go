package main

import (
	"context"
	"fmt"

	"github.com/mercadinho/auth-service/internal/adapter"
	"github.com/mercadinho/auth-service/internal/config"
	httphandler "github.com/mercadinho/auth-service/internal/handler/http"
	"github.com/mercadinho/auth-service/internal/logger"
	"github.com/mercadinho/auth-service/internal/server"
	"github.com/mercadinho/auth-service/internal/service"
	"github.com/mercadinho/auth-service/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := adapter.NewMailGateway(cfg.Notifier, log)
	services := service.NewServices(storages, notifier, cfg.Auth, log)
	handler := httphandler.NewHandler(services, log)

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
