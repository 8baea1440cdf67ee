// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage driver names accepted by [Storage.Driver].
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverFile   = "file"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the durable session storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the backend HTTP client.
type Adapter struct {
	// HTTPAddress is the base URL of the matchmaking backend.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every single request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the durable storage settings.
type Storage struct {
	// Driver is either [StorageDriverSQLite] or [StorageDriverFile].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file settings.
	File File `envPrefix:"FILE_"`
}

// DB holds the local SQLite connection settings.
type DB struct {
	// DSN is the SQLite file path / DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds the JSON file storage settings.
type File struct {
	// Path is the JSON file that holds the key-value pairs.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}
