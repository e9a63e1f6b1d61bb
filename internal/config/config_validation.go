// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.FileName == "" || strings.ContainsAny(cfg.Storage.FileName, `/\`) {
		return fmt.Errorf("%w: file name %q", ErrInvalidStorageConfigs, cfg.Storage.FileName)
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval %s", ErrInvalidWorkerConfigs, cfg.Workers.RefreshInterval)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}
	if cfg.Log.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLogConfigs)
	}

	return nil
}
