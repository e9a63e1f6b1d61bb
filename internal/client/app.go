// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/otp-tray/internal/config"
	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/internal/service"
	"github.com/MKhiriev/otp-tray/internal/state"
	"github.com/MKhiriev/otp-tray/internal/store"
	"github.com/MKhiriev/otp-tray/internal/tui"
	"github.com/MKhiriev/otp-tray/models"
)

var _ Client = (*App)(nil)

// App is the tray process: one dispatcher goroutine consuming the event queue
// and one front end owning the main loop.
type App struct {
	queue           *events.Queue
	ui              UI
	tray            service.TrayService
	refreshInterval time.Duration

	logger *logger.Logger
}

// NewApp loads the persisted entries and wires the terminal front end.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, storages *store.Storages, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	policy := cfg.ActivationPolicy()
	return newApp(ctx, cfg.Workers, storages, func(sink events.Sink) UI {
		return tui.New(sink, info, policy, logger)
	}, logger)
}

func newApp(ctx context.Context, cfg config.Workers, storages *store.Storages, newUI UIFactory, logger *logger.Logger) (*App, error) {
	initial, err := state.LoadFromConfig(ctx, storages.Config)
	if err != nil {
		return nil, fmt.Errorf("load startup state: %w", err)
	}
	logger.Info().Int("entries", initial.Len()).Msg("entries loaded")

	queue := events.NewQueue()
	ui := newUI(queue)
	tray := service.NewTrayService(state.NewStore(initial), storages.Config, ui, queue, logger)

	return &App{
		queue:           queue,
		ui:              ui,
		tray:            tray,
		refreshInterval: cfg.RefreshInterval,
		logger:          logger,
	}, nil
}

// Run schedules the periodic refresh, starts the dispatcher and blocks in the
// front end. The dispatcher is stopped once the front end returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.ui.SchedulePeriodic(a.refreshInterval, func() {
		a.queue.Post(events.Refresh{})
	})
	a.queue.Post(events.Refresh{})

	dispatched := make(chan error, 1)
	go func() {
		defer cancel()
		dispatched <- a.tray.Run(ctx)
	}()

	uiErr := a.ui.Run(ctx)

	a.queue.Close()
	cancel()
	if err := <-dispatched; err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error().Err(err).Msg("dispatcher failed")
	}

	if uiErr != nil {
		return fmt.Errorf("front end: %w", uiErr)
	}

	a.logger.Info().Msg("tray stopped")
	return nil
}
