// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:8000)
//	-request-timeout request timeout (e.g. "10s")
//	-storage storage driver: sqlite | file
//	-d SQLite DSN
//	-f JSON storage file path
//	-log-level zerolog level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("match-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		httpAddress    string
		requestTimeout time.Duration
		driver         string
		databaseDSN    string
		filePath       string
		logLevel       string
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&httpAddress, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&driver, "storage", "", "Storage driver: sqlite or file")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "JSON storage file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver: driver,
			DB:     DB{DSN: databaseDSN},
			File:   File{Path: filePath},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
