// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/otp-tray/internal/logger"
	"github.com/MKhiriev/otp-tray/models"
	"gopkg.in/yaml.v3"
)

// configFileMode keeps secrets readable by the owner only.
const configFileMode fs.FileMode = 0o600

// trayConfig is the on-disk document written by Save.
type trayConfig struct {
	Entries []models.Entry `yaml:"entries"`
}

// rawTrayConfig defers decoding of the individual records so a single bad
// record can be dropped without rejecting the whole file.
type rawTrayConfig struct {
	Entries []yaml.Node `yaml:"entries"`
}

// entryRecord detects missing keys: a record is admitted only when every
// field is present and has the right type.
type entryRecord struct {
	Name       *string `yaml:"name"`
	Step       *uint64 `yaml:"step"`
	SecretHash *string `yaml:"secret_hash"`
	HashFn     *string `yaml:"hash_fn"`
	DigitCount *uint8  `yaml:"digit_count"`
}

var errIncompleteRecord = errors.New("record is missing required keys")

// yamlConfigStorage is the default [ConfigStorage].
type yamlConfigStorage struct {
	path   string
	logger *logger.Logger
}

// NewYAMLConfigStorage returns a [ConfigStorage] backed by the YAML file at
// path.
func NewYAMLConfigStorage(path string, logger *logger.Logger) ConfigStorage {
	return &yamlConfigStorage{path: path, logger: logger}
}

// Path implements [ConfigStorage].
func (s *yamlConfigStorage) Path() string {
	return s.path
}

// Load implements [ConfigStorage]. A missing file yields an empty list. Any
// other read error wraps [ErrReadConfig]; a document that is not a mapping
// with an `entries` sequence wraps [ErrMalformedConfig].
func (s *yamlConfigStorage) Load(ctx context.Context) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info().Str("path", s.path).Msg("config file not found, starting with no entries")
		return []models.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, s.path, err)
	}

	var raw rawTrayConfig
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedConfig, s.path, err)
	}

	entries := make([]models.Entry, 0, len(raw.Entries))
	for i := range raw.Entries {
		node := &raw.Entries[i]
		entry, err := decodeEntry(node)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("path", s.path).
				Int("record", i).
				Int("line", node.Line).
				Msg("dropping unparsable config record")
			continue
		}
		entries = append(entries, entry)
	}

	s.logger.Debug().Str("path", s.path).Int("entries", len(entries)).Msg("config loaded")
	return entries, nil
}

// Save implements [ConfigStorage]. The file is created or truncated with
// mode 0600; an existing file with wider permissions is narrowed.
func (s *yamlConfigStorage) Save(ctx context.Context, entries []models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if entries == nil {
		entries = []models.Entry{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(trayConfig{Entries: entries}); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWriteConfig, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWriteConfig, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.path, err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, configFileMode)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.path, err)
	}
	if err = f.Chmod(configFileMode); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.path, err)
	}
	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteConfig, s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Int("entries", len(entries)).Msg("config saved")
	return nil
}

func decodeEntry(node *yaml.Node) (models.Entry, error) {
	var rec entryRecord
	if err := node.Decode(&rec); err != nil {
		return models.Entry{}, err
	}
	if rec.Name == nil || rec.Step == nil || rec.SecretHash == nil || rec.HashFn == nil || rec.DigitCount == nil {
		return models.Entry{}, errIncompleteRecord
	}

	hashFn := models.HashFunction(*rec.HashFn)
	if !hashFn.IsValid() {
		return models.Entry{}, fmt.Errorf("unknown hash function %q", *rec.HashFn)
	}

	return models.Entry{
		Name:       *rec.Name,
		Step:       *rec.Step,
		SecretHash: *rec.SecretHash,
		HashFn:     hashFn,
		DigitCount: *rec.DigitCount,
	}, nil
}
