// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-match-client/internal/logger"
)

const (
	localStorageTable = "local_storage"
	columnKey         = "storage_key"
	columnValue       = "storage_value"
	columnUpdatedAt   = "updated_at"

	upsertSuffix = "ON CONFLICT(storage_key) DO UPDATE SET storage_value = excluded.storage_value, updated_at = excluded.updated_at"
)

// sqlite uses ? placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sqliteLocalStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteLocalStorage returns a [LocalStorage] backed by the migrated
// local_storage table of db.
func NewSQLiteLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqliteLocalStorage{db: db, logger: logger}
}

func (s *sqliteLocalStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := builder.
		Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		s.logger.Err(err).
			Str("func", "sqliteLocalStorage.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteLocalStorage) SetMany(ctx context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, key := range slices.Sorted(maps.Keys(pairs)) {
		query, args, err := builder.
			Insert(localStorageTable).
			Columns(columnKey, columnValue, columnUpdatedAt).
			Values(key, pairs[key], sq.Expr("CURRENT_TIMESTAMP")).
			Suffix(upsertSuffix).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).
				Str("func", "sqliteLocalStorage.SetMany").
				Str("key", key).
				Msg("failed to upsert value")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := builder.
		Delete(localStorageTable).
		Where(sq.Eq{columnKey: keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteLocalStorage.Delete").
			Strs("keys", keys).
			Msg("failed to delete values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Close() error {
	return s.db.Close()
}
