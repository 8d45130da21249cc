package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/imgautam07/share-in-web/internal/adapter"
	"github.com/imgautam07/share-in-web/internal/client"
	"github.com/imgautam07/share-in-web/internal/config"
	"github.com/imgautam07/share-in-web/internal/logger"
	"github.com/imgautam07/share-in-web/internal/service"
	"github.com/imgautam07/share-in-web/internal/store"
	"github.com/imgautam07/share-in-web/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	log := logger.NewClientLogger("share-in-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	credStore, err := store.NewCredentialStore(cfg.Storage.CredentialsPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}

	tokens, ok := credStore.(adapter.TokenSource)
	if !ok {
		log.Fatal().Msg("credential store does not supply tokens")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, tokens, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(credStore, serverAdapter, cfg, log)

	ui, err := tui.New(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
