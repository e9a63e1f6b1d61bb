// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/otp-tray/internal/events"
	"github.com/MKhiriev/otp-tray/internal/frontend"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is a front end that owns the process main loop.
type UI interface {
	frontend.Frontend

	// Run blocks until the user quits or ctx is done.
	Run(ctx context.Context) error
}

// UIFactory builds the front end. Input from the user is posted to sink.
type UIFactory func(sink events.Sink) UI
