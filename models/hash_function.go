// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HashFunction names the HMAC hash used to derive a code.
type HashFunction string

const (
	SHA1   HashFunction = "sha1"
	SHA256 HashFunction = "sha256"
	SHA512 HashFunction = "sha512"
)

// HashFunctions is the exhaustive, ordered set of supported hash functions.
// Editors present the choices in this order.
var HashFunctions = []HashFunction{SHA1, SHA256, SHA512}

// IsValid reports whether h is one of [HashFunctions].
func (h HashFunction) IsValid() bool {
	for _, known := range HashFunctions {
		if h == known {
			return true
		}
	}
	return false
}

func (h HashFunction) String() string {
	return string(h)
}
