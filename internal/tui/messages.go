// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/otp-tray/models"
)

// Messages below are sent into the program by the Frontend methods, which
// run on the dispatcher goroutine.

type renderMenuMsg struct {
	items    []models.MenuItem
	onSelect func(id uint64)
}

type renderEntryListMsg struct {
	names    []string
	onSelect func(index int)
}

type renderEntryFormMsg struct {
	initial  models.Entry
	title    string
	onSubmit func(models.EntryForm) error
	onCancel func()
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct {
	seq int
}
