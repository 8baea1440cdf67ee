// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-match-client/models"

// Status is the authentication status of a session.
type Status int

const (
	StatusAnonymous Status = iota
	StatusPending
	StatusAuthenticated
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "ANONYMOUS"
	case StatusPending:
		return "PENDING"
	case StatusAuthenticated:
		return "AUTHENTICATED"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// State is a snapshot of the session.
//
// User and Token are set together and only in [StatusAuthenticated].
type State struct {
	Status Status
	User   *models.User
	Token  string
	Err    string
}

// IsAuthenticated reports whether a user is logged in.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// Loading reports whether a login or registration is in flight.
func (s State) Loading() bool {
	return s.Status == StatusPending
}

// clone copies the cached user so callers cannot mutate the store's copy.
func (s State) clone() State {
	if s.User != nil {
		u := cloneUser(*s.User)
		s.User = &u
	}
	return s
}

func cloneUser(u models.User) models.User {
	if u.Interests != nil {
		interests := make([]models.Interest, len(u.Interests))
		copy(interests, u.Interests)
		u.Interests = interests
	}
	return u
}
