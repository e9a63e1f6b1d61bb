// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/otp-tray/models"
)

// Store publishes the current [AppState]. Snapshot and Replace are safe to
// call from any goroutine; readers always observe a complete snapshot.
//
// Store does not serialize read-modify-write sequences: two writers that
// derive from the same snapshot race and the last Replace wins. Callers
// funnel state changes through a single event consumer.
type Store struct {
	current atomic.Pointer[AppState]
}

// NewStore returns a store publishing initial.
func NewStore(initial AppState) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Snapshot returns the currently published state.
func (s *Store) Snapshot() AppState {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return AppState{}
}

// Replace publishes next as the current state.
func (s *Store) Replace(next AppState) {
	s.current.Store(&next)
}

// EntryLoader reads the persisted entry list.
type EntryLoader interface {
	Load(ctx context.Context) ([]models.Entry, error)
}

// LoadFromConfig builds the startup state from persisted entries. The code
// table of the returned state is empty.
func LoadFromConfig(ctx context.Context, loader EntryLoader) (AppState, error) {
	entries, err := loader.Load(ctx)
	if err != nil {
		return AppState{}, fmt.Errorf("load entries: %w", err)
	}
	return New(entries), nil
}
