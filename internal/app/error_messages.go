// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used
// across the match client.
//
// Msg* constants fall in two groups: the "detail" strings the backend puts in
// its error bodies (matched by the service layer to pick a business error)
// and the fixed wording shown to the user in the terminal UI. Keeping them in
// one place ensures consistent wording throughout the client.
package app

// Backend error details.
const (
	// MsgEmailAlreadyRegistered is the backend's 400 detail when a create or
	// update uses an email that belongs to another user.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgUserNotFound is the backend's 404 detail for an unknown user id.
	MsgUserNotFound = "User not found"
)

// User-facing messages.
const (
	// MsgInvalidCredentials is shown when no user matches the login email.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgLoginFailed is the generic message for a failed login request.
	MsgLoginFailed = "Login failed. Please try again."

	// MsgRegistrationFailed is the generic message for a failed registration
	// request.
	MsgRegistrationFailed = "Registration failed. Please try again."

	// MsgSessionSaveFailed is recorded when a successful login cannot be
	// written to local storage.
	MsgSessionSaveFailed = "Could not save the session. Please try again."

	// MsgProfileUpdateFailed is the generic message for a failed profile
	// update.
	MsgProfileUpdateFailed = "Failed to update profile. Please try again."

	// MsgDeleteAccountFailed is the generic message for a failed account
	// deletion.
	MsgDeleteAccountFailed = "Failed to delete account. Please try again."

	// MsgFetchMatchesFailed is shown when the match list cannot be loaded.
	MsgFetchMatchesFailed = "Failed to fetch matches. Please try again."

	// MsgServerUnavailable is shown when the backend cannot be reached.
	MsgServerUnavailable = "Server is unavailable. Check the backend address and try again."
)
