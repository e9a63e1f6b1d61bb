// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package frontend declares the contract between the tray dispatcher and a
// concrete user interface.
//
// The dispatcher never knows which toolkit draws the menu: it hands
// [Frontend] plain data plus callbacks, and the callbacks post events back to
// the dispatcher's queue. Callbacks may be invoked from any goroutine and
// must not block.
package frontend

//go:generate mockgen -source=interfaces.go -destination=../mock/frontend_mock.go -package=mock

import (
	"time"

	"github.com/MKhiriev/otp-tray/models"
)

// Frontend is implemented by every user interface of the tray.
type Frontend interface {
	// RenderMenu replaces the menu with items. onSelect receives the ID of
	// the item the user picked.
	RenderMenu(items []models.MenuItem, onSelect func(id uint64))

	// RenderEntryForm opens the add/edit form pre-filled from initial.
	// onSubmit returns a validation error to keep the form open, nil to let
	// it close. onCancel is called when the user dismisses the form.
	RenderEntryForm(initial models.Entry, title string, onSubmit func(models.EntryForm) error, onCancel func())

	// RenderEntryList shows the setup list with one row per entry name.
	// onSelectIndex receives the position of the row the user picked.
	RenderEntryList(names []string, onSelectIndex func(index int))

	// CopyToClipboard places text on the system clipboard.
	CopyToClipboard(text string) error

	// SchedulePeriodic calls fn every interval until the front end quits.
	SchedulePeriodic(interval time.Duration, fn func())

	// QuitApplication closes the user interface.
	QuitApplication()
}
