package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/otp-tray/internal/client"
	"github.com/MKhiriev/otp-tray/internal/config"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/internal/store"
	"github.com/MKhiriev/otp-tray/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("otptray")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI from here on
	trayLog, closer, err := logger.NewTrayLogger("otptray", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening log file")
	}
	defer closer.Close()

	trayLog.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, trayLog)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), trayLog)
	if err != nil {
		log.Fatal().Err(err).Msg("init tray app error")
	}

	if err = app.Run(ctx); err != nil {
		trayLog.Error().Err(err).Msg("tray run error")
		log.Fatal().Err(err).Msg("tray run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
