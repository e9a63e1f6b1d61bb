// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/MKhiriev/otp-tray/internal/config"
	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestStorage(t *testing.T) (ConfigStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFileName)
	return NewYAMLConfigStorage(path, logger.Nop()), path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func sampleEntries() []models.Entry {
	return []models.Entry{
		{Name: "GitHub", Step: 30, SecretHash: "JBSWY3DPEHPK3PXP", HashFn: models.SHA1, DigitCount: 6},
		{Name: "AWS", Step: 60, SecretHash: "GEZDGNBVGY3TQOJQ", HashFn: models.SHA256, DigitCount: 8},
		{Name: "Bank", Step: 30, SecretHash: "MFRGGZDFMZTWQ2LK", HashFn: models.SHA512, DigitCount: 7},
	}
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_MissingFileYieldsEmptyList(t *testing.T) {
	storage, _ := newTestStorage(t)

	entries, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLoad_ParsesOriginalFormat(t *testing.T) {
	storage, path := newTestStorage(t)
	writeFile(t, path, `---
entries:
  - name: GitHub
    step: 30
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: sha1
    digit_count: 6
  - name: AWS
    step: 60
    secret_hash: GEZDGNBVGY3TQOJQ
    hash_fn: sha256
    digit_count: 8
`)

	entries, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleEntries()[:2], entries)
}

func TestLoad_EmptyFile(t *testing.T) {
	storage, path := newTestStorage(t)
	writeFile(t, path, "")

	entries, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_MalformedDocument(t *testing.T) {
	tests := map[string]string{
		"syntax error":         "entries: [\n  - name: x\n",
		"entries not sequence": "entries: 5\n",
		"top level sequence":   "- name: x\n",
		"top level scalar":     "hello\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			storage, path := newTestStorage(t)
			writeFile(t, path, content)

			_, err := storage.Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformedConfig)
		})
	}
}

func TestLoad_DropsUnparsableRecords(t *testing.T) {
	storage, path := newTestStorage(t)
	writeFile(t, path, `entries:
  - name: good
    step: 30
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: sha1
    digit_count: 6
  - name: bad-step
    step: abc
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: sha1
    digit_count: 6
  - name: negative-step
    step: -30
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: sha1
    digit_count: 6
  - name: digits-overflow
    step: 30
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: sha1
    digit_count: 300
  - name: unknown-hash
    step: 30
    secret_hash: JBSWY3DPEHPK3PXP
    hash_fn: md5
    digit_count: 6
  - name: missing-secret
    step: 30
    hash_fn: sha1
    digit_count: 6
  - just a string
  - name: also-good
    step: 15
    secret_hash: GEZDGNBV
    hash_fn: sha512
    digit_count: 8
`)

	entries, err := storage.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "good", entries[0].Name)
	assert.Equal(t, "also-good", entries[1].Name)
	assert.Equal(t, models.SHA512, entries[1].HashFn)
}

func TestLoad_UnreadableFile(t *testing.T) {
	storage, path := newTestStorage(t)
	// a directory in place of the file cannot be read as one
	require.NoError(t, os.Mkdir(path, 0o700))

	_, err := storage.Load(context.Background())
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_CancelledContext(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSave_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		t.Run("entries", func(t *testing.T) {
			storage, _ := newTestStorage(t)
			want := sampleEntries()[:n]

			require.NoError(t, storage.Save(context.Background(), want))
			got, err := storage.Load(context.Background())

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSave_NilEntries(t *testing.T) {
	storage, path := newTestStorage(t)

	require.NoError(t, storage.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entries: []")
}

func TestSave_WritesOriginalKeys(t *testing.T) {
	storage, path := newTestStorage(t)

	require.NoError(t, storage.Save(context.Background(), sampleEntries()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{"entries:", "name: GitHub", "step: 30", "secret_hash: JBSWY3DPEHPK3PXP", "hash_fn: sha1", "digit_count: 6"} {
		assert.Contains(t, string(data), key)
	}
}

func TestSave_TruncatesPreviousContent(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, sampleEntries()))
	require.NoError(t, storage.Save(ctx, sampleEntries()[:1]))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries()[:1], got)
}

func TestSave_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions only")
	}
	storage, path := newTestStorage(t)
	writeFile(t, path, "entries: []\n")
	require.NoError(t, os.Chmod(path, 0o644))

	require.NoError(t, storage.Save(context.Background(), sampleEntries()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", config.DefaultFileName)
	storage := NewYAMLConfigStorage(path, logger.Nop())

	require.NoError(t, storage.Save(context.Background(), sampleEntries()))
	assert.FileExists(t, path)
}

func TestSave_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "")
	storage := NewYAMLConfigStorage(filepath.Join(blocker, config.DefaultFileName), logger.Nop())

	err := storage.Save(context.Background(), sampleEntries())
	assert.ErrorIs(t, err, ErrWriteConfig)
}

// ── ConfigPath ────────────────────────────────────────────────────────────────

func TestConfigPath_Override(t *testing.T) {
	path, err := ConfigPath("/tmp/otp", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/otp", "otptray.yaml"), path)

	path, err = ConfigPath("/tmp/otp", "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/otp", "custom.yaml"), path)
}

func TestConfigPath_UserConfigDir(t *testing.T) {
	orig := userConfigDir
	t.Cleanup(func() { userConfigDir = orig })

	userConfigDir = func() (string, error) { return "/home/u/.config", nil }
	path, err := ConfigPath("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.config", "otptray.yaml"), path)
}

func TestConfigPath_NoUserConfigDir(t *testing.T) {
	orig := userConfigDir
	t.Cleanup(func() { userConfigDir = orig })

	userConfigDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	_, err := ConfigPath("", "")
	assert.ErrorIs(t, err, ErrNoUserConfigDir)

	userConfigDir = func() (string, error) { return "", nil }
	_, err = ConfigPath("", "")
	assert.ErrorIs(t, err, ErrNoUserConfigDir)
}

func TestPath(t *testing.T) {
	storage, path := newTestStorage(t)
	assert.Equal(t, path, storage.Path())
}
