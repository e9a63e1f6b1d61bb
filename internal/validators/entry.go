// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"

	"github.com/MKhiriev/otp-tray/models"
)

// Field names reported in [FieldError].
const (
	FieldName         = "name"
	FieldSecret       = "secret"
	FieldHashFunction = "hash function"
	FieldStep         = "step"
	FieldDigitCount   = "digit count"
)

// entryValidator is the default [EntryValidator].
type entryValidator struct {
	choices []string
}

// NewEntryValidator constructs the entry validator.
func NewEntryValidator() EntryValidator {
	choices := make([]string, 0, len(models.HashFunctions))
	for _, h := range models.HashFunctions {
		choices = append(choices, h.String())
	}
	return &entryValidator{choices: choices}
}

// Validate implements [EntryValidator]. Input is taken verbatim, nothing is
// trimmed. Checks run in this order and the first failure wins:
// name empty, name length, secret empty, hash function, step, digit count.
func (v *entryValidator) Validate(form models.EntryForm) (models.Entry, error) {
	if form.Name == "" {
		return models.Entry{}, &FieldError{Field: FieldName, Err: ErrEmptyField}
	}
	if len(form.Name) > models.MaxNameLength {
		return models.Entry{}, &FieldError{
			Field:      FieldName,
			Err:        ErrFieldTooLong,
			Length:     len(form.Name),
			UpperBound: models.MaxNameLength,
		}
	}
	if form.Secret == "" {
		return models.Entry{}, &FieldError{Field: FieldSecret, Err: ErrEmptyField}
	}

	hashFn := models.HashFunction(form.HashFn)
	if !hashFn.IsValid() {
		return models.Entry{}, &FieldError{
			Field:     FieldHashFunction,
			Err:       ErrInvalidSelection,
			Candidate: form.HashFn,
			Choices:   v.choices,
		}
	}

	step, err := strconv.ParseUint(form.Step, 10, 64)
	if err != nil {
		return models.Entry{}, &FieldError{Field: FieldStep, Err: ErrIntegerFormat, Cause: err}
	}
	digits, err := strconv.ParseUint(form.DigitCount, 10, 8)
	if err != nil {
		return models.Entry{}, &FieldError{Field: FieldDigitCount, Err: ErrIntegerFormat, Cause: err}
	}

	return models.Entry{
		Name:       form.Name,
		Step:       step,
		SecretHash: form.Secret,
		HashFn:     hashFn,
		DigitCount: uint8(digits),
	}, nil
}

// FormFromEntry renders an entry back into editor text fields. It is the
// inverse of Validate for every admitted entry.
func FormFromEntry(e models.Entry) models.EntryForm {
	return models.EntryForm{
		Name:       e.Name,
		Step:       strconv.FormatUint(e.Step, 10),
		Secret:     e.SecretHash,
		HashFn:     e.HashFn.String(),
		DigitCount: strconv.FormatUint(uint64(e.DigitCount), 10),
	}
}
