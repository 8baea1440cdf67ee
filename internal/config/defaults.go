// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = "http://localhost:8000"
	defaultRequestTimeout = 15 * time.Second
	defaultDBDSN          = "match-client.db"
	defaultFilePath       = "match-client.json"
	defaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: defaultLogLevel},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			Driver: StorageDriverSQLite,
			DB:     DB{DSN: defaultDBDSN},
			File:   File{Path: defaultFilePath},
		},
	}
}
