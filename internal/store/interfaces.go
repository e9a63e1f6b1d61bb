// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the credential entry list to a YAML file in the
// user configuration directory.
package store

import (
	"context"

	"github.com/MKhiriev/otp-tray/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_storage_mock.go -package=mock

// ConfigStorage loads and saves the entry list.
type ConfigStorage interface {
	// Load returns the persisted entries. A missing file is not an error and
	// yields an empty list. Records that cannot be fully parsed are dropped.
	Load(ctx context.Context) ([]models.Entry, error)

	// Save replaces the persisted entries. The file is readable and
	// writable by its owner only.
	Save(ctx context.Context, entries []models.Entry) error

	// Path returns the location of the config file.
	Path() string
}
