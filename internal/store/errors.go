// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the config storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoUserConfigDir is returned when the platform user configuration
	// directory cannot be resolved and no override is configured. There is
	// no sensible fallback location, so this is fatal at startup.
	ErrNoUserConfigDir = errors.New("cannot resolve user config directory")

	// ErrReadConfig is returned when the config file exists but cannot be
	// read.
	ErrReadConfig = errors.New("error reading config file")

	// ErrMalformedConfig is returned when the config file is not a YAML
	// mapping with an `entries` sequence.
	ErrMalformedConfig = errors.New("malformed config file")

	// ErrWriteConfig is returned when the config file cannot be created,
	// written or closed.
	ErrWriteConfig = errors.New("error writing config file")
)
