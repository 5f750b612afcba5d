package main

import (
	"fmt"

	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/client"
	"github.com/reznik99/cloud-storage-client/internal/config"
	"github.com/reznik99/cloud-storage-client/internal/crypto"
	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/internal/service"
	"github.com/reznik99/cloud-storage-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cloud-storage-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	keyVault := crypto.NewKeyVaultService(cfg.App.KDFDomain)
	services := service.NewClientServices(localStorage, serverAdapter, keyVault, cfg.Adapter.HTTPAddress)

	app, err := client.NewApp(services, cfg.Workers, log)
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
