package main

import (
	"fmt"

	"github.com/ravasquez/dni-gateway/internal/config"
	httphandler "github.com/ravasquez/dni-gateway/internal/handler/http"
	"github.com/ravasquez/dni-gateway/internal/logger"
	"github.com/ravasquez/dni-gateway/internal/server"
	"github.com/ravasquez/dni-gateway/internal/service"
	"github.com/ravasquez/dni-gateway/internal/upstream"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dni-gateway")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.Address).
		Str("upstream_url", cfg.Upstream.URL).
		Int("batch_max_keys", cfg.Batch.MaxKeys).
		Int("batch_concurrency", cfg.Batch.Concurrency).
		Msg("received configs")

	// not fatal: the token may arrive with a later deploy, single
	// lookups fail per-request until then
	if cfg.Upstream.Token == "" {
		log.Warn().Msg("SEEKER_TOKEN is not set: lookups will fail until it is configured")
	}

	client := upstream.NewClient(cfg.Upstream)
	services := service.NewServices(client, cfg.Batch, log)
	handler := httphandler.NewHandler(services, cfg.Auth, log)

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
