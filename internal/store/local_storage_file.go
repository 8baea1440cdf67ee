// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-match-client/internal/logger"
)

// fileLocalStorage keeps all pairs in one JSON object. Every write replaces
// the file through a temp file and a rename, so a reader never sees a
// partially written pair.
type fileLocalStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileLocalStorage returns a [LocalStorage] persisted to the JSON file at
// path. The file and its directory are created on first write.
func NewFileLocalStorage(path string, logger *logger.Logger) LocalStorage {
	return &fileLocalStorage{path: path, logger: logger}
}

func (f *fileLocalStorage) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pairs, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := pairs[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (f *fileLocalStorage) SetMany(_ context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.load()
	if err != nil {
		// an unreadable file is replaced rather than blocking new writes
		f.logger.Warn().Err(err).Str("path", f.path).Msg("discarding unreadable storage file")
		current = make(map[string]string, len(pairs))
	}

	for k, v := range pairs {
		current[k] = v
	}

	return f.save(current)
}

func (f *fileLocalStorage) Delete(_ context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	current, err := f.load()
	if err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("discarding unreadable storage file")
		current = map[string]string{}
	}

	for _, k := range keys {
		delete(current, k)
	}

	return f.save(current)
}

func (f *fileLocalStorage) Close() error {
	return nil
}

func (f *fileLocalStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	pairs := map[string]string{}
	if len(data) == 0 {
		return pairs, nil
	}
	if err = json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	return pairs, nil
}

func (f *fileLocalStorage) save(pairs map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod temp storage file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
