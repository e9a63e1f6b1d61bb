// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Defaults used to pre-populate the "Add Entry" form. They match the values
// Google Authenticator assumes when a provisioning URI omits them.
const (
	DefaultStep       uint64 = 30
	DefaultDigitCount uint8  = 6

	// MaxNameLength is the upper bound, in bytes, of an entry name.
	MaxNameLength = 255
)

// Entry is the persisted definition of one one-time-password source.
//
// Entries are values: every state transition copies them, nothing mutates an
// Entry after it has been admitted into the entry list. Position in the list
// is the only identity an entry has; names are not required to be unique.
type Entry struct {
	// Name is the label shown in the menu (1–255 bytes).
	Name string `yaml:"name"`
	// Step is the TOTP time step in seconds.
	Step uint64 `yaml:"step"`
	// SecretHash is the Base32 (RFC 4648, unpadded) shared secret.
	// The key name is historical; the value is not a hash.
	SecretHash string `yaml:"secret_hash"`
	// HashFn selects the HMAC hash function.
	HashFn HashFunction `yaml:"hash_fn"`
	// DigitCount is the number of digits of the generated code.
	DigitCount uint8 `yaml:"digit_count"`
}

// DefaultEntry returns the blank entry used by the "Add Entry" form.
func DefaultEntry() Entry {
	return Entry{
		Name:       "",
		SecretHash: "",
		HashFn:     SHA1,
		Step:       DefaultStep,
		DigitCount: DefaultDigitCount,
	}
}

// EntryForm carries the raw, unvalidated text fields submitted by an entry
// editor. It is turned into an [Entry] by the entry validator.
type EntryForm struct {
	Name       string
	Step       string
	Secret     string
	HashFn     string
	DigitCount string
}
