// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultRefreshInterval = 10 * time.Second
	// DefaultFileName is the name of the entries file inside the user
	// configuration directory.
	DefaultFileName    = "otptray.yaml"
	DefaultLogLevel    = "info"
	DefaultLogFileName = "otptray.log"

	appDirName = "otptray"
)

// userCacheDir and userConfigDir are swapped in tests.
var (
	userCacheDir  = os.UserCacheDir
	userConfigDir = os.UserConfigDir
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			FileName: DefaultFileName,
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  defaultLogFile(),
		},
	}
}

// defaultLogFile places the log in a per-user directory: the user cache dir,
// or the user config dir when no cache dir is known. It returns "" when
// neither resolves, which fails validation unless a log file is configured.
func defaultLogFile() string {
	for _, dir := range []func() (string, error){userCacheDir, userConfigDir} {
		base, err := dir()
		if err == nil && base != "" {
			return filepath.Join(base, appDirName, DefaultLogFileName)
		}
	}
	return ""
}
