// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/otp-tray/internal/config"
	"github.com/MKhiriev/otp-tray/internal/logger"
)

// Storages groups the persistence backends of the tray. It currently holds
// the entries config file only.
type Storages struct {
	Config ConfigStorage
}

// NewStorages resolves the entries file location from cfg and constructs the
// storages. Returns [ErrNoUserConfigDir] when no location can be resolved.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	path, err := ConfigPath(cfg.ConfigDir, cfg.FileName)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	logger.Info().Str("path", path).Msg("using entries config file")

	return &Storages{
		Config: NewYAMLConfigStorage(path, logger),
	}, nil
}
