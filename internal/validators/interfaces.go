// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators turns raw editor input into domain values.
//
// Validation is decoupled from the front ends: every editor submits the same
// [models.EntryForm] and receives either an admitted [models.Entry] or a
// *[FieldError] naming the first rule that failed.
package validators

import "github.com/MKhiriev/otp-tray/models"

// EntryValidator validates entry editor input.
type EntryValidator interface {
	// Validate checks the form fields in a fixed order and returns the first
	// violation. Multiple violations are never aggregated.
	Validate(form models.EntryForm) (models.Entry, error)
}
