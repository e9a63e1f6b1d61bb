// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyField       = errors.New("field is required")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrIntegerFormat    = errors.New("invalid integer")
)

// FieldError reports which form field failed validation and why.
// Err is one of the sentinel errors above; the remaining fields carry the
// details needed to render a helpful message.
type FieldError struct {
	Field string
	Err   error

	// Length and UpperBound are set for ErrFieldTooLong.
	Length     int
	UpperBound int
	// Candidate and Choices are set for ErrInvalidSelection.
	Candidate string
	Choices   []string
	// Cause is the underlying parse error for ErrIntegerFormat.
	Cause error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrFieldTooLong):
		return fmt.Sprintf("%s: %v (%d > %d bytes)", e.Field, e.Err, e.Length, e.UpperBound)
	case errors.Is(e.Err, ErrInvalidSelection):
		return fmt.Sprintf("%s: %v %q (one of %s)", e.Field, e.Err, e.Candidate, strings.Join(e.Choices, ", "))
	case errors.Is(e.Err, ErrIntegerFormat) && e.Cause != nil:
		return fmt.Sprintf("%s: %v: %v", e.Field, e.Err, e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
