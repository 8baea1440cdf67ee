// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_EarlierSourceWins verifies that a non-zero field of an earlier
// config is not overwritten, while zero fields are filled from later ones.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2", RequestTimeout: time.Second}},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, defaultDBDSN, cfg.Storage.DB.DSN)
}

func TestBuild_ReturnsAccumulatedError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-a", "http://x:1"}))
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://x:1", b.configs[0].Adapter.HTTPAddress)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"adapter":{"http_address":"http://json:3"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json:3", b.configs[1].Adapter.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the path from the higher priority
// source (env before flags) is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempFile(t, "first.json", `{"app":{"log_level":"debug"}}`)
	second := writeTempFile(t, "second.json", `{"app":{"log_level":"warn"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{},
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "debug", b.configs[3].App.LogLevel)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := writeTempFile(t, ".env", "STORAGE_DRIVER=file\n")
	t.Setenv("STORAGE_DRIVER", "")
	require.NoError(t, os.Unsetenv("STORAGE_DRIVER"))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, StorageDriverFile, b.configs[0].Storage.Driver)
}

func TestWithDotEnv_DoesNotOverrideExisting(t *testing.T) {
	path := writeTempFile(t, ".env", "APP_LOG_LEVEL=debug\n")
	t.Setenv("APP_LOG_LEVEL", "error")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "error", b.configs[0].App.LogLevel)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, defaultDBDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultFilePath, cfg.Storage.File.Path)
	assert.Equal(t, defaultLogLevel, cfg.App.LogLevel)
}

func TestGetClientConfig_Priority(t *testing.T) {
	t.Chdir(t.TempDir())
	jsonPath := writeTempFile(t, "c.json", `{
		"adapter": {"http_address": "http://json:1", "request_timeout": "3s"},
		"storage": {"driver": "file", "file": {"path": "json.json"}},
		"app": {"log_level": "warn"}
	}`)
	t.Setenv("ADAPTER_HTTP_ADDRESS", "http://env:1")

	cfg, err := GetClientConfig([]string{"-a", "http://flag:1", "-request-timeout", "7s", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "json.json", cfg.Storage.File.Path)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestGetClientConfig_InvalidFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := GetClientConfig([]string{"-request-timeout", "soon"})
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() ClientConfig {
		return ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://localhost:8000", RequestTimeout: time.Second},
			Storage: ClientStorage{Driver: StorageDriverSQLite, DB: ClientDB{DSN: "c.db"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid sqlite", mutate: func(*ClientConfig) {}},
		{name: "valid file", mutate: func(c *ClientConfig) {
			c.Storage.Driver = StorageDriverFile
			c.Storage.File.Path = "s.json"
		}},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.Driver = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without path", mutate: func(c *ClientConfig) { c.Storage.Driver = StorageDriverFile }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
