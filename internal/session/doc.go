// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the process-wide authentication state of the match
// client.
//
// State changes go through [Reduce], a pure transition function over
// [State] and [Action]. [Store] wraps it with durable persistence of the
// token/user pair, hydration at startup and change listeners.
package session
