// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the match client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
