// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrAlreadyAuthenticated is returned by login or registration while a
	// user is logged in.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrNotAuthenticated is returned by operations that need a logged in
	// user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPersistSession is returned when the session cannot be written to
	// local storage.
	ErrPersistSession = errors.New("persist session")

	// ErrSessionSuperseded is returned by a login or registration whose
	// result arrived after the session was reset by a logout.
	ErrSessionSuperseded = errors.New("session changed while logging in")
)
