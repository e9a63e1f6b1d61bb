// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import "errors"

var (
	// ErrInvalidSecret is returned together with a code when the entry secret
	// is not valid Base32. The code is then derived from an empty key and is
	// not the code the provider expects.
	ErrInvalidSecret = errors.New("secret is not valid base32")
	// ErrUnknownHashFunction is returned when an entry names a hash function
	// outside models.HashFunctions. No code is produced.
	ErrUnknownHashFunction = errors.New("unknown hash function")
)
