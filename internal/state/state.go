// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the application state of the tray: the entry list and
// the ephemeral table that maps rendered menu items to their codes.
//
// [AppState] is an immutable value. Every transition (add, edit, remove,
// menu reset, code registration) returns a new AppState and leaves the
// receiver untouched, so a snapshot handed to a reader never changes under
// it. [Store] publishes snapshots with atomic pointer swaps.
package state

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/otp-tray/models"
	"github.com/cespare/xxhash/v2"
)

// AppState is one immutable snapshot of the application state.
// The zero value is an empty state.
type AppState struct {
	entries []models.Entry
	codes   map[uint64]string
	// generation numbers menu renders; ids handed out by AppendCode embed it
	// so ids from an earlier render never resolve after MenuReset.
	generation uint32
}

// New returns a state holding a copy of entries and an empty code table.
func New(entries []models.Entry) AppState {
	return AppState{entries: slices.Clone(entries)}
}

// Entries returns a copy of the entry list.
func (s AppState) Entries() []models.Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of entries.
func (s AppState) Len() int {
	return len(s.entries)
}

// Entry returns the entry at index. It panics when index is out of range.
func (s AppState) Entry(index int) models.Entry {
	s.mustIndex(index)
	return s.entries[index]
}

// Names returns the entry names in list order.
func (s AppState) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// CodeCount returns the number of codes in the ephemeral table.
func (s AppState) CodeCount() int {
	return len(s.codes)
}

// Generation returns the render generation of the snapshot.
func (s AppState) Generation() uint32 {
	return s.generation
}

// MenuReset returns a state with the same entries and an empty code table.
// It must precede every menu render so ids of the previous render stop
// resolving.
func (s AppState) MenuReset() AppState {
	return AppState{
		entries:    s.entries,
		generation: s.generation + 1,
	}
}

// RegisterCode maps an adapter-supplied identity token to code. It is the
// hashed-identity alternative to [AppState.AppendCode] for adapters whose
// menu items are native widget handles: the id is the 64-bit xxhash of the
// handle bytes. Two identities with the same hash share an id and the later
// registration wins.
func (s AppState) RegisterCode(identity []byte, code string) (AppState, uint64) {
	id := xxhash.Sum64(identity)
	return s.withCode(id, code), id
}

// AppendCode adds code under a fresh sequential id. Ids are unique within a
// render and never reused by a later render.
func (s AppState) AppendCode(code string) (AppState, uint64) {
	id := uint64(s.generation)<<32 | uint64(len(s.codes))
	for {
		if _, taken := s.codes[id]; !taken {
			break
		}
		id++
	}
	return s.withCode(id, code), id
}

// ResolveCode looks up the code behind a rendered menu item.
func (s AppState) ResolveCode(id uint64) (string, bool) {
	code, ok := s.codes[id]
	return code, ok
}

// SaveEntry returns a state with entry appended (add) or written over the
// entry at action.Index (edit). The code table is cleared.
//
// An out-of-range edit index is a caller bug and panics: front ends only
// send indices they enumerated from the same state.
func (s AppState) SaveEntry(entry models.Entry, action models.EntryAction) AppState {
	var entries []models.Entry
	if action.IsEdit() {
		s.mustIndex(action.Index)
		entries = slices.Clone(s.entries)
		entries[action.Index] = entry
	} else {
		entries = append(slices.Clone(s.entries), entry)
	}

	next := s.MenuReset()
	next.entries = entries
	return next
}

// RemoveEntry returns a state without the entry at index. The code table is
// cleared. An out-of-range index panics, as for SaveEntry.
func (s AppState) RemoveEntry(index int) AppState {
	s.mustIndex(index)

	next := s.MenuReset()
	next.entries = slices.Delete(slices.Clone(s.entries), index, index+1)
	return next
}

func (s AppState) withCode(id uint64, code string) AppState {
	codes := make(map[uint64]string, len(s.codes)+1)
	maps.Copy(codes, s.codes)
	codes[id] = code

	return AppState{
		entries:    s.entries,
		codes:      codes,
		generation: s.generation,
	}
}

func (s AppState) mustIndex(index int) {
	if index < 0 || index >= len(s.entries) {
		panic(fmt.Sprintf("state: entry index %d out of range [0,%d)", index, len(s.entries)))
	}
}
