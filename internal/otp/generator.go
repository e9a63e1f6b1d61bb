// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp derives time-based one-time passwords (RFC 6238) for
// credential entries.
package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"
	"time"

	"github.com/MKhiriev/otp-tray/models"
)

// secretEncoding is RFC 4648 Base32 without padding.
var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// maxReducedDigits is the largest digit count for which the modulus 10^d is
// still smaller than the 31-bit truncated value range. Wider codes keep the
// whole truncated value and are only zero-padded.
const maxReducedDigits = 9

// Generator derives codes for entries.
type Generator interface {
	// Code returns the code of entry at now. When the secret cannot be
	// decoded the code is derived from an empty key and ErrInvalidSecret is
	// returned alongside it.
	Code(entry models.Entry, now time.Time) (string, error)
	// Value is Code paired with the entry name.
	Value(entry models.Entry, now time.Time) (models.OTPValue, error)
}

type totpGenerator struct{}

// NewGenerator returns the RFC 6238 generator.
func NewGenerator() Generator {
	return totpGenerator{}
}

// Code implements [Generator].
func (g totpGenerator) Code(entry models.Entry, now time.Time) (string, error) {
	newHash, err := hashConstructor(entry.HashFn)
	if err != nil {
		return "", err
	}

	key, decodeErr := DecodeSecret(entry.SecretHash)
	if decodeErr != nil {
		key = []byte{}
	}

	code := Derive(newHash, key, Counter(now, entry.Step), entry.DigitCount)
	return code, decodeErr
}

// Value implements [Generator].
func (g totpGenerator) Value(entry models.Entry, now time.Time) (models.OTPValue, error) {
	code, err := g.Code(entry, now)
	return models.OTPValue{Name: entry.Name, Code: code}, err
}

// DecodeSecret decodes an unpadded Base32 secret. Lower-case input and
// trailing padding are tolerated.
func DecodeSecret(secret string) ([]byte, error) {
	normalized := strings.TrimRight(strings.ToUpper(secret), "=")
	key, err := secretEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return key, nil
}

// Counter is the RFC 6238 moving factor: whole steps elapsed since the Unix
// epoch. A zero step falls back to the default step.
func Counter(now time.Time, step uint64) uint64 {
	if step == 0 {
		step = models.DefaultStep
	}
	seconds := now.Unix()
	if seconds < 0 {
		return 0
	}
	return uint64(seconds) / step
}

// Derive computes the RFC 4226 HOTP value of counter under key and renders
// it as a zero-padded decimal string of exactly digits characters. A zero
// digit count yields an empty code.
func Derive(newHash func() hash.Hash, key []byte, counter uint64, digits uint8) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	if digits == 0 {
		return ""
	}

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := uint64(binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff)

	if digits <= maxReducedDigits {
		value %= pow10(digits)
	}

	return fmt.Sprintf("%0*d", int(digits), value)
}

func hashConstructor(h models.HashFunction) (func() hash.Hash, error) {
	switch h {
	case models.SHA1:
		return sha1.New, nil
	case models.SHA256:
		return sha256.New, nil
	case models.SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashFunction, string(h))
	}
}

func pow10(n uint8) uint64 {
	result := uint64(1)
	for range n {
		result *= 10
	}
	return result
}
