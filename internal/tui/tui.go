// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the tray. It implements
// [frontend.Frontend] on top of a bubbletea program: the dispatcher drives
// the screens through render messages, and key presses go back to the
// dispatcher as events.
package tui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/otp-tray/internal/app"
	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/internal/frontend"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/internal/workers"
	"github.com/MKhiriev/otp-tray/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var _ frontend.Frontend = (*TUI)(nil)

// programSender is the part of *tea.Program the Frontend methods use.
type programSender interface {
	Send(msg tea.Msg)
	Quit()
}

// TUI is the bubbletea implementation of [frontend.Frontend].
type TUI struct {
	program *tea.Program
	sender  programSender
	workers *workers.Workers
	copyFn  func(text string) error

	logger *logger.Logger
}

// New builds the terminal front end. Key presses are posted to sink. A
// foreground policy takes over the whole terminal (alternate screen); a
// background one renders inline.
func New(sink events.Sink, info models.AppBuildInfo, policy models.ActivationPolicy, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	options := make([]tea.ProgramOption, 0, len(opts)+1)
	if policy == models.Foreground {
		options = append(options, tea.WithAltScreen())
	}
	options = append(options, opts...)

	program := tea.NewProgram(newModel(sink, info), options...)

	return &TUI{
		program: program,
		sender:  program,
		workers: &workers.Workers{},
		copyFn:  clipboard.WriteAll,
		logger:  logger,
	}
}

// Run starts the scheduled jobs and blocks in the bubbletea event loop until
// the program quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	t.workers.Start(ctx)
	defer t.workers.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.program.Quit()
		case <-done:
		}
	}()

	if _, err := t.program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// RenderMenu implements [frontend.Frontend].
func (t *TUI) RenderMenu(items []models.MenuItem, onSelect func(id uint64)) {
	t.sender.Send(renderMenuMsg{items: slices.Clone(items), onSelect: onSelect})
}

// RenderEntryForm implements [frontend.Frontend].
func (t *TUI) RenderEntryForm(initial models.Entry, title string, onSubmit func(models.EntryForm) error, onCancel func()) {
	t.sender.Send(renderEntryFormMsg{
		initial:  initial,
		title:    title,
		onSubmit: onSubmit,
		onCancel: onCancel,
	})
}

// RenderEntryList implements [frontend.Frontend].
func (t *TUI) RenderEntryList(names []string, onSelectIndex func(index int)) {
	t.sender.Send(renderEntryListMsg{names: slices.Clone(names), onSelect: onSelectIndex})
}

// CopyToClipboard implements [frontend.Frontend]. The outcome is also shown
// in the status line.
func (t *TUI) CopyToClipboard(text string) error {
	if err := t.copyFn(text); err != nil {
		t.logger.Error().Err(err).Msg("clipboard write failed")
		t.sender.Send(statusMsg{text: app.MsgCopyFailed + ": " + err.Error(), isErr: true})
		return err
	}

	t.sender.Send(statusMsg{text: app.MsgCodeCopied})
	return nil
}

// SchedulePeriodic implements [frontend.Frontend]. Jobs scheduled before Run
// start with it; later ones start right away. All stop when Run returns.
func (t *TUI) SchedulePeriodic(interval time.Duration, fn func()) {
	ticker := workers.NewTicker(interval, fn)
	t.workers.Add(ticker)
	t.logger.Debug().Dur("interval", ticker.Interval()).Msg("periodic job scheduled")
}

// QuitApplication implements [frontend.Frontend].
func (t *TUI) QuitApplication() {
	t.sender.Quit()
}
