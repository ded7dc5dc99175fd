package main

import (
	"fmt"

	"github.com/MKhiriev/go-app-lock/internal/adapter"
	"github.com/MKhiriev/go-app-lock/internal/client"
	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/crypto"
	"github.com/MKhiriev/go-app-lock/internal/device"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/MKhiriev/go-app-lock/internal/store"
	"github.com/MKhiriev/go-app-lock/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-app-lock-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessionAdapter, err := adapter.NewHTTPSessionAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session adapter")
	}

	probe, err := adapter.NewGRPCHealthProbe(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create health probe")
	}
	defer probe.Close()

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	lockCfg := cfg.Lock.Configuration()
	ui := tui.New(lockCfg, log)

	services := service.NewLockServices(
		lockCfg,
		cfg.App.DeviceSecret,
		storages,
		sessionAdapter,
		probe,
		device.NewUnavailableAuthenticator(log),
		crypto.NewKeyChainService(),
		ui,
		log,
	)

	app, err := client.NewApp(services, ui, sessionAdapter, cfg.Workers, log)
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
