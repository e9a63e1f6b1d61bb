// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"crypto/sha1"
	"encoding/base32"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/otp-tray/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func encodeSecret(raw string) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(raw))
}

// RFC 6238 Appendix B seeds.
var rfcSeeds = map[models.HashFunction]string{
	models.SHA1:   "12345678901234567890",
	models.SHA256: "12345678901234567890123456789012",
	models.SHA512: "1234567890123456789012345678901234567890123456789012345678901234",
}

func rfcEntry(h models.HashFunction) models.Entry {
	return models.Entry{
		Name:       "rfc-" + h.String(),
		Step:       30,
		SecretHash: encodeSecret(rfcSeeds[h]),
		HashFn:     h,
		DigitCount: 8,
	}
}

// ── RFC 6238 ──────────────────────────────────────────────────────────────────

func TestCode_RFC6238Vectors(t *testing.T) {
	vectors := []struct {
		unix   int64
		sha1   string
		sha256 string
		sha512 string
	}{
		{59, "94287082", "46119246", "90693936"},
		{1111111109, "07081804", "68084774", "25091201"},
		{1111111111, "14050471", "67062674", "99943326"},
		{1234567890, "89005924", "91819424", "93441116"},
		{2000000000, "69279037", "90698825", "38618901"},
		{20000000000, "65353130", "77737706", "47863826"},
	}

	gen := NewGenerator()
	for _, v := range vectors {
		now := time.Unix(v.unix, 0)
		for h, want := range map[models.HashFunction]string{
			models.SHA1:   v.sha1,
			models.SHA256: v.sha256,
			models.SHA512: v.sha512,
		} {
			got, err := gen.Code(rfcEntry(h), now)
			require.NoError(t, err)
			assert.Equal(t, want, got, "hash=%s time=%d", h, v.unix)
		}
	}
}

// RFC 4226 Appendix D, HOTP values for counters 0..9.
func TestDerive_RFC4226Vectors(t *testing.T) {
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, code := range want {
		assert.Equal(t, code, Derive(sha1.New, []byte("12345678901234567890"), uint64(counter), 6))
	}
}

// ── properties ────────────────────────────────────────────────────────────────

func TestCode_StableWithinStep(t *testing.T) {
	gen := NewGenerator()
	entry := models.Entry{Name: "GitHub", Step: 30, SecretHash: "JBSWY3DPEHPK3PXP", HashFn: models.SHA1, DigitCount: 6}

	windowStart := time.Unix(1_700_000_010, 0)
	first, err := gen.Code(entry, windowStart)
	require.NoError(t, err)

	for offset := range 30 {
		got, err := gen.Code(entry, windowStart.Add(time.Duration(offset)*time.Second))
		require.NoError(t, err)
		assert.Equal(t, first, got, "offset %ds", offset)
	}
}

func TestCode_LengthMatchesDigitCount(t *testing.T) {
	gen := NewGenerator()
	now := time.Unix(1_234_567_890, 0)

	for _, h := range models.HashFunctions {
		for digits := uint8(1); digits <= 12; digits++ {
			entry := rfcEntry(h)
			entry.DigitCount = digits

			code, err := gen.Code(entry, now)
			require.NoError(t, err)
			assert.Len(t, code, int(digits))
			assert.Empty(t, strings.Trim(code, "0123456789"), "code %q must be numeric", code)
		}
	}
}

func TestCode_WideDigitCounts(t *testing.T) {
	gen := NewGenerator()
	now := time.Unix(1_234_567_890, 0)
	entry := rfcEntry(models.SHA1)

	entry.DigitCount = 10
	ten, err := gen.Code(entry, now)
	require.NoError(t, err)

	for _, digits := range []uint8{19, 20, 64, 255} {
		entry.DigitCount = digits
		code, err := gen.Code(entry, now)
		require.NoError(t, err)
		assert.Len(t, code, int(digits))
		// past nine digits the whole truncated value is kept and only padded
		assert.Equal(t, strings.TrimLeft(ten, "0"), strings.TrimLeft(code, "0"))
	}
}

func TestCode_ZeroDigits(t *testing.T) {
	entry := rfcEntry(models.SHA1)
	entry.DigitCount = 0

	code, err := NewGenerator().Code(entry, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestCode_ZeroStepUsesDefault(t *testing.T) {
	gen := NewGenerator()
	entry := rfcEntry(models.SHA1)
	now := time.Unix(1_111_111_109, 0)

	want, err := gen.Code(entry, now)
	require.NoError(t, err)

	entry.Step = 0
	got, err := gen.Code(entry, now)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCode_LowerCaseAndPaddedSecret(t *testing.T) {
	gen := NewGenerator()
	now := time.Unix(59, 0)
	entry := rfcEntry(models.SHA1)

	entry.SecretHash = strings.ToLower(entry.SecretHash)
	got, err := gen.Code(entry, now)
	require.NoError(t, err)
	assert.Equal(t, "94287082", got)

	entry.SecretHash = base32.StdEncoding.EncodeToString([]byte("12345678901234567890")) + "===="
	got, err = gen.Code(entry, now)
	require.NoError(t, err)
	assert.Equal(t, "94287082", got)
}

// ── error paths ───────────────────────────────────────────────────────────────

func TestCode_InvalidSecretDegradesToEmptyKey(t *testing.T) {
	gen := NewGenerator()
	now := time.Unix(59, 0)
	entry := models.Entry{Name: "broken", Step: 30, SecretHash: "not base32!", HashFn: models.SHA1, DigitCount: 6}

	code, err := gen.Code(entry, now)
	assert.ErrorIs(t, err, ErrInvalidSecret)
	assert.Equal(t, Derive(sha1.New, []byte{}, Counter(now, 30), 6), code)
	assert.Len(t, code, 6)
}

func TestCode_UnknownHashFunction(t *testing.T) {
	entry := rfcEntry(models.SHA1)
	entry.HashFn = "md5"

	code, err := NewGenerator().Code(entry, time.Unix(59, 0))
	assert.ErrorIs(t, err, ErrUnknownHashFunction)
	assert.Empty(t, code)
}

func TestValue_PairsNameAndCode(t *testing.T) {
	v, err := NewGenerator().Value(rfcEntry(models.SHA256), time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, models.OTPValue{Name: "rfc-sha256", Code: "46119246"}, v)
	assert.Equal(t, "rfc-sha256: 46119246", v.MenuLabel())
}

func TestCounter(t *testing.T) {
	assert.Equal(t, uint64(1), Counter(time.Unix(59, 0), 30))
	assert.Equal(t, uint64(2), Counter(time.Unix(60, 0), 30))
	assert.Equal(t, uint64(0), Counter(time.Unix(-5, 0), 30))
	assert.Equal(t, uint64(59), Counter(time.Unix(59, 0), 1))
}
