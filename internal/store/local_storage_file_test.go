// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewFileLocalStorage(path, logger.Nop())
	ctx := context.Background()

	_, err := s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.SetMany(ctx, map[string]string{KeyToken: "tok", KeyUser: `{"id":1}`}))

	// a fresh instance reads what the first one wrote
	reopened := NewFileLocalStorage(path, logger.Nop())
	got, err := reopened.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, got)

	require.NoError(t, reopened.SetMany(ctx, map[string]string{KeyUser: `{"id":2}`}))
	got, err = s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":2}`, got)

	require.NoError(t, s.Delete(ctx, KeyToken, KeyUser))
	_, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = s.Get(ctx, KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStorage_DeleteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	s := NewFileLocalStorage(path, logger.Nop())

	require.NoError(t, s.Delete(context.Background(), KeyToken))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))
	s := NewFileLocalStorage(path, logger.Nop())
	ctx := context.Background()

	_, err := s.Get(ctx, KeyToken)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	// writes replace the unreadable file
	require.NoError(t, s.SetMany(ctx, map[string]string{KeyToken: "tok"}))
	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestFileStorage_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	s := NewFileLocalStorage(filepath.Join(dir, "s.json"), logger.Nop())

	require.NoError(t, s.SetMany(context.Background(), map[string]string{KeyToken: "a"}))
	require.NoError(t, s.SetMany(context.Background(), map[string]string{KeyToken: "b"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
