// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the durable key-value storage that keeps the client
// session across restarts.
//
// Two backends implement [LocalStorage]: an SQLite table managed by goose
// migrations (the default) and a single JSON file.
package store

import (
	"context"
)

// Keys of the persisted session pair.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is an origin-scoped string key-value store.
type LocalStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// SetMany writes all pairs atomically: either every pair is stored or
	// none is.
	SetMany(ctx context.Context, pairs map[string]string) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Close releases the underlying resources.
	Close() error
}
