// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-match-client/models"

// Action is an event applied to a [State] by [Reduce].
type Action interface {
	isAction()
}

// ActionRequest starts a login or registration attempt.
type ActionRequest struct{}

// ActionSuccess completes an attempt with the issued token and user.
type ActionSuccess struct {
	Token string
	User  models.User
}

// ActionFailure completes an attempt with an error message.
type ActionFailure struct {
	Err string
}

// ActionUpdateUser replaces the cached user of an authenticated session.
type ActionUpdateUser struct {
	User models.User
}

// ActionLogout ends an authenticated session.
type ActionLogout struct{}

// ActionRestore installs a session read from local storage at startup.
type ActionRestore struct {
	Token string
	User  models.User
}

func (ActionRequest) isAction()    {}
func (ActionSuccess) isAction()    {}
func (ActionFailure) isAction()    {}
func (ActionUpdateUser) isAction() {}
func (ActionLogout) isAction()     {}
func (ActionRestore) isAction()    {}

// Reduce returns the state that follows s after a. Actions that are not
// valid for the current status return s unchanged.
func Reduce(s State, a Action) State {
	next, _ := reduce(s, a)
	return next
}

func reduce(s State, a Action) (State, bool) {
	switch act := a.(type) {
	case ActionRequest:
		switch s.Status {
		case StatusAnonymous, StatusError, StatusPending:
			return State{Status: StatusPending}, true
		}

	case ActionSuccess:
		// overlapping attempts: the last success wins, even over an earlier
		// failure
		if s.Status != StatusAnonymous {
			return authenticated(act.Token, act.User), true
		}

	case ActionFailure:
		if s.Status == StatusPending {
			return State{Status: StatusError, Err: act.Err}, true
		}

	case ActionUpdateUser:
		if s.Status == StatusAuthenticated {
			return authenticated(s.Token, act.User), true
		}

	case ActionLogout:
		if s.Status == StatusAuthenticated {
			return State{Status: StatusAnonymous}, true
		}

	case ActionRestore:
		if s.Status == StatusAnonymous {
			return authenticated(act.Token, act.User), true
		}
	}

	return s, false
}

func authenticated(token string, user models.User) State {
	u := cloneUser(user)
	return State{Status: StatusAuthenticated, User: &u, Token: token}
}
