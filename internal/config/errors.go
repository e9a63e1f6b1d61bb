// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when a configuration
// group is incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty entries file name or one
	// containing a path separator.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or empty log path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
