// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/otp-tray/internal/config"
	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/internal/store"
	"github.com/MKhiriev/otp-tray/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedUI quits as soon as the first menu arrives.
type scriptedUI struct {
	sink   events.Sink
	runErr error

	mu        sync.Mutex
	menus     [][]models.MenuItem
	scheduled []time.Duration

	firstMenu chan struct{}
	menuOnce  sync.Once
	quit      chan struct{}
	quitOnce  sync.Once
}

func newScriptedUI(sink events.Sink) *scriptedUI {
	return &scriptedUI{
		sink:      sink,
		firstMenu: make(chan struct{}),
		quit:      make(chan struct{}),
	}
}

func (u *scriptedUI) RenderMenu(items []models.MenuItem, _ func(id uint64)) {
	u.mu.Lock()
	u.menus = append(u.menus, items)
	u.mu.Unlock()
	u.menuOnce.Do(func() { close(u.firstMenu) })
}

func (u *scriptedUI) RenderEntryForm(models.Entry, string, func(models.EntryForm) error, func()) {}

func (u *scriptedUI) RenderEntryList([]string, func(index int)) {}

func (u *scriptedUI) CopyToClipboard(string) error { return nil }

func (u *scriptedUI) SchedulePeriodic(interval time.Duration, _ func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.scheduled = append(u.scheduled, interval)
}

func (u *scriptedUI) QuitApplication() {
	u.quitOnce.Do(func() { close(u.quit) })
}

func (u *scriptedUI) Run(ctx context.Context) error {
	if u.runErr != nil {
		return u.runErr
	}

	select {
	case <-u.firstMenu:
	case <-ctx.Done():
		return nil
	}
	u.sink.Post(events.Quit{})

	select {
	case <-u.quit:
	case <-ctx.Done():
	}
	return nil
}

func newTestStorages(t *testing.T, entries ...models.Entry) *store.Storages {
	t.Helper()
	path := filepath.Join(t.TempDir(), "otptray.yaml")
	storage := store.NewYAMLConfigStorage(path, logger.Nop())
	require.NoError(t, storage.Save(context.Background(), entries))
	return &store.Storages{Config: storage}
}

var workersCfg = config.Workers{RefreshInterval: 5 * time.Second}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestApp_RunRendersMenuAndQuits(t *testing.T) {
	storages := newTestStorages(t, models.Entry{
		Name:       "GitHub",
		Step:       30,
		SecretHash: "JBSWY3DPEHPK3PXP",
		HashFn:     models.SHA1,
		DigitCount: 6,
	})

	var ui *scriptedUI
	app, err := newApp(context.Background(), workersCfg, storages, func(sink events.Sink) UI {
		ui = newScriptedUI(sink)
		return ui
	}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after quit")
	}

	ui.mu.Lock()
	defer ui.mu.Unlock()
	assert.Equal(t, []time.Duration{5 * time.Second}, ui.scheduled)
	require.NotEmpty(t, ui.menus)
	require.Len(t, ui.menus[0], 1)
	assert.True(t, strings.HasPrefix(ui.menus[0][0].Label, "GitHub: "), ui.menus[0][0].Label)
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	storages := newTestStorages(t)
	app, err := newApp(context.Background(), workersCfg, storages, func(sink events.Sink) UI {
		ui := newScriptedUI(sink)
		// never quits on its own
		ui.menuOnce.Do(func() {})
		return ui
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_FrontEndErrorIsReturned(t *testing.T) {
	errNoTTY := errors.New("open /dev/tty: no such device")
	app, err := newApp(context.Background(), workersCfg, newTestStorages(t), func(sink events.Sink) UI {
		ui := newScriptedUI(sink)
		ui.runErr = errNoTTY
		return ui
	}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.ErrorIs(t, err, errNoTTY)
}

// ── startup ──────────────────────────────────────────────────────────────────

func TestNewApp_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otptray.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: 5\n"), 0o600))
	storages := &store.Storages{Config: store.NewYAMLConfigStorage(path, logger.Nop())}

	_, err := newApp(context.Background(), workersCfg, storages, func(sink events.Sink) UI {
		return newScriptedUI(sink)
	}, logger.Nop())
	require.ErrorIs(t, err, store.ErrMalformedConfig)
}

func TestNewApp_TerminalFrontEnd(t *testing.T) {
	cfg := &config.StructuredConfig{Workers: workersCfg}
	app, err := NewApp(context.Background(), cfg, newTestStorages(t), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.ui)
	assert.Equal(t, 5*time.Second, app.refreshInterval)
}
