// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/otp-tray/internal/config"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// ConfigPath resolves the entries file location. dir overrides the platform
// user configuration directory when non-empty; fileName defaults to
// [config.DefaultFileName].
func ConfigPath(dir, fileName string) (string, error) {
	if fileName == "" {
		fileName = config.DefaultFileName
	}

	if dir == "" {
		var err error
		dir, err = userConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoUserConfigDir, err)
		}
		if dir == "" {
			return "", ErrNoUserConfigDir
		}
	}

	return filepath.Join(dir, fileName), nil
}
