// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-match-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the login and register pages once the session
// store has finished the attempt.
type AuthResult struct {
	User models.User
	Err  error
}

// menuNotice is a status line shown on the menu, e.g. after a logout.
type menuNotice string

type matchesLoadedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
	// fetchErr is set when the profile was saved but the matches could not
	// be refreshed.
	fetchErr error
}

type accountDeletedMsg struct {
	err error
	// cleanupErr is set when the account is gone but the local session
	// could not be cleared.
	cleanupErr error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
