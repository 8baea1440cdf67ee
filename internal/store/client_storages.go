// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-match-client/internal/config"
	"github.com/MKhiriev/go-match-client/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the client runtime.
type ClientStorages struct {
	// LocalStorage holds the persisted session pair.
	LocalStorage LocalStorage
}

// NewClientStorages initialises the storage backend selected by cfg.Driver:
//   - "sqlite": opens cfg.DB.DSN (creating the file if needed) and runs the
//     goose migrations before returning the table-backed storage.
//   - "file": returns the JSON file storage at cfg.File.Path.
//
// Returns an error for an unknown driver, a failed connection or a failed
// migration.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{LocalStorage: NewSQLiteLocalStorage(db, logger)}, nil
	case config.StorageDriverFile:
		return &ClientStorages{LocalStorage: NewFileLocalStorage(cfg.File.Path, logger)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the storage backend.
func (c *ClientStorages) Close() error {
	return c.LocalStorage.Close()
}
