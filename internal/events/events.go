// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"fmt"

	"github.com/MKhiriev/otp-tray/models"
)

// Event is implemented only by the types of this package.
type Event interface {
	fmt.Stringer
	event()
}

// Refresh re-derives every code and re-renders the menu.
type Refresh struct{}

// OpenSetup shows the entry list.
type OpenSetup struct{}

// OpenEntry shows the entry form for adding or editing.
type OpenEntry struct {
	Action models.EntryAction
}

// SaveEntry stores a validated entry.
type SaveEntry struct {
	Entry  models.Entry
	Action models.EntryAction
}

// RemoveEntry deletes the entry at Index.
type RemoveEntry struct {
	Index int
}

// CopyToClipboard copies the code registered under ID.
type CopyToClipboard struct {
	ID uint64
}

// Quit stops the application.
type Quit struct{}

func (Refresh) event()         {}
func (OpenSetup) event()       {}
func (OpenEntry) event()       {}
func (SaveEntry) event()       {}
func (RemoveEntry) event()     {}
func (CopyToClipboard) event() {}
func (Quit) event()            {}

func (Refresh) String() string   { return "refresh" }
func (OpenSetup) String() string { return "open_setup" }
func (Quit) String() string      { return "quit" }

func (e OpenEntry) String() string {
	return "open_entry(" + e.Action.String() + ")"
}

// String omits the secret.
func (e SaveEntry) String() string {
	return fmt.Sprintf("save_entry(%s, %q)", e.Action, e.Entry.Name)
}

func (e RemoveEntry) String() string {
	return fmt.Sprintf("remove_entry(%d)", e.Index)
}

func (e CopyToClipboard) String() string {
	return fmt.Sprintf("copy_to_clipboard(%#x)", e.ID)
}
