// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session, runs the login flow while the session
// is anonymous and the matches view while it is authenticated.
package client
