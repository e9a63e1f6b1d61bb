// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/internal/frontend"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/internal/otp"
	"github.com/MKhiriev/otp-tray/internal/state"
	"github.com/MKhiriev/otp-tray/internal/store"
	"github.com/MKhiriev/otp-tray/internal/validators"
	"github.com/MKhiriev/otp-tray/models"
)

type trayService struct {
	state     *state.Store
	storage   store.ConfigStorage
	frontend  frontend.Frontend
	queue     *events.Queue
	generator otp.Generator
	validator validators.EntryValidator
	now       func() time.Time

	logger *logger.Logger
}

// NewTrayService wires the dispatcher. Callbacks handed to fe post their
// events to queue, and Run consumes the same queue.
func NewTrayService(
	appState *state.Store,
	storage store.ConfigStorage,
	fe frontend.Frontend,
	queue *events.Queue,
	logger *logger.Logger,
) TrayService {
	return &trayService{
		state:     appState,
		storage:   storage,
		frontend:  fe,
		queue:     queue,
		generator: otp.NewGenerator(),
		validator: validators.NewEntryValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Run implements [TrayService].
func (s *trayService) Run(ctx context.Context) error {
	s.logger.Info().Msg("dispatcher started")
	defer s.logger.Info().Msg("dispatcher stopped")

	for {
		ev, err := s.queue.Next(ctx)
		if errors.Is(err, events.ErrQueueClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if err = s.Handle(ctx, ev); err != nil {
			s.logger.Warn().Err(err).Stringer("event", ev).Msg("event not applied")
		}

		if _, quit := ev.(events.Quit); quit {
			return nil
		}
	}
}

// Handle implements [TrayService].
func (s *trayService) Handle(ctx context.Context, ev events.Event) error {
	l := s.logger.With().Stringer("event", ev).Logger()
	ctx = l.WithContext(ctx)
	l.Debug().Msg("handling event")

	switch e := ev.(type) {
	case events.Refresh:
		s.refresh(ctx)
	case events.OpenSetup:
		s.openSetup()
	case events.OpenEntry:
		s.openEntry(ctx, e.Action)
	case events.SaveEntry:
		s.apply(ctx, s.state.Snapshot().SaveEntry(e.Entry, e.Action))
	case events.RemoveEntry:
		s.apply(ctx, s.state.Snapshot().RemoveEntry(e.Index))
	case events.CopyToClipboard:
		return s.copyCode(ctx, e.ID)
	case events.Quit:
		s.frontend.QuitApplication()
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	return nil
}

// refresh derives every code and renders them as a fresh menu.
func (s *trayService) refresh(ctx context.Context) {
	log := logger.FromContext(ctx)

	next := s.state.Snapshot().MenuReset()
	now := s.now()

	entries := next.Entries()
	items := make([]models.MenuItem, 0, len(entries))
	for i, entry := range entries {
		value, err := s.generator.Value(entry, now)
		switch {
		case errors.Is(err, otp.ErrInvalidSecret):
			log.Warn().Int("entry", i).Str("name", entry.Name).Msg("secret is not valid base32, code derived from an empty key")
		case err != nil:
			log.Error().Err(err).Int("entry", i).Str("name", entry.Name).Msg("cannot derive code")
			continue
		}

		var id uint64
		next, id = next.AppendCode(value.Code)
		items = append(items, models.MenuItem{ID: id, Label: value.MenuLabel()})
	}

	s.state.Replace(next)
	s.frontend.RenderMenu(items, s.onMenuSelect)

	log.Debug().Int("items", len(items)).Uint32("generation", next.Generation()).Msg("menu refreshed")
}

func (s *trayService) openSetup() {
	s.frontend.RenderEntryList(s.state.Snapshot().Names(), s.onEntrySelect)
}

func (s *trayService) openEntry(ctx context.Context, action models.EntryAction) {
	initial := models.DefaultEntry()
	if action.IsEdit() {
		initial = s.state.Snapshot().Entry(action.Index)
	}

	onSubmit := func(form models.EntryForm) error {
		entry, err := s.validator.Validate(form)
		if err != nil {
			return err
		}
		s.queue.Post(events.SaveEntry{Entry: entry, Action: action})
		return nil
	}
	onCancel := func() {
		logger.FromContext(ctx).Debug().Msg("entry form dismissed")
	}

	s.frontend.RenderEntryForm(initial, action.WindowTitle(), onSubmit, onCancel)
}

// apply publishes next, persists its entries and refreshes the open views.
// A persistence failure is logged; the in-memory state is kept.
func (s *trayService) apply(ctx context.Context, next state.AppState) {
	log := logger.FromContext(ctx)

	s.state.Replace(next)

	if err := s.storage.Save(ctx, next.Entries()); err != nil {
		log.Error().Err(err).Str("path", s.storage.Path()).Msg("failed to persist entries")
	} else {
		log.Info().Int("entries", next.Len()).Msg("entries saved")
	}

	s.frontend.RenderEntryList(next.Names(), s.onEntrySelect)
	s.queue.Post(events.Refresh{})
}

func (s *trayService) copyCode(ctx context.Context, id uint64) error {
	code, ok := s.state.Snapshot().ResolveCode(id)
	if !ok {
		return fmt.Errorf("%w: %#x", ErrUnknownCodeID, id)
	}

	if err := s.frontend.CopyToClipboard(code); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	logger.FromContext(ctx).Debug().Msg("code copied")
	return nil
}

func (s *trayService) onMenuSelect(id uint64) {
	s.queue.Post(events.CopyToClipboard{ID: id})
}

func (s *trayService) onEntrySelect(index int) {
	s.queue.Post(events.OpenEntry{Action: models.EditAction(index)})
}
