// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is where JSON logs are appended.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientFile contains JSON file storage settings.
type ClientFile struct {
	// Path is the JSON file path.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver selects the backend.
	Driver string
	// DB holds local database settings.
	DB ClientDB
	// File holds JSON file settings.
	File ClientFile
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from the
// process environment and the given command-line arguments (without the
// program name).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			File:   ClientFile{Path: cfg.Storage.File.Path},
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetStructuredConfig merges .env, environment, flags, the optional JSON file
// and defaults into one [StructuredConfig].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
