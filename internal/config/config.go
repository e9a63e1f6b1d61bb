// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/otp-tray/models"
)

// EnvPrefix is prepended to every environment variable the tray reads.
const EnvPrefix = "OTPTRAY_"

// StructuredConfig is the top-level configuration container for otptray. It
// is populated by merging values from environment variables, command-line
// flags, an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings of the front end.
	App App `envPrefix:"APP_"`

	// Storage locates the YAML file holding the OTP entries.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds settings of the periodic background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the diagnostic log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via OTPTRAY_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds front-end settings.
type App struct {
	// Foreground runs the tray as a regular foreground application instead
	// of a background utility.
	// Env: OTPTRAY_APP_FOREGROUND
	Foreground bool `env:"FOREGROUND"`
}

// Storage locates the entries file.
type Storage struct {
	// ConfigDir overrides the per-user configuration directory.
	// Env: OTPTRAY_STORAGE_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// FileName is the entries file name inside ConfigDir.
	// Env: OTPTRAY_STORAGE_FILE_NAME
	FileName string `env:"FILE_NAME"`
}

// Workers holds settings of periodic jobs.
type Workers struct {
	// RefreshInterval is how often the menu codes are re-derived.
	// Env: OTPTRAY_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logging settings. The terminal belongs to the front end, so logs
// always go to a file.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: OTPTRAY_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path.
	// Env: OTPTRAY_LOG_FILE
	File string `env:"FILE"`
}

// ActivationPolicy reports how the front end should present itself.
func (cfg *StructuredConfig) ActivationPolicy() models.ActivationPolicy {
	return models.ActivationPolicyFromFlag(cfg.App.Foreground)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
