// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the tray dispatcher: the single consumer of UI
// events that turns them into state transitions, persistence and front-end
// calls.
package service

import (
	"context"

	"github.com/MKhiriev/otp-tray/internal/events"
)

// TrayService applies UI events to the application state.
type TrayService interface {
	// Handle applies one event. Errors are informational: the state stays
	// consistent whatever Handle returns.
	Handle(ctx context.Context, ev events.Event) error

	// Run drains the event queue until a Quit event has been handled, the
	// queue is closed, or ctx is done. Run must have a single caller.
	Run(ctx context.Context) error
}
