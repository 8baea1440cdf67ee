// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const profileHotKeys = "e: edit │ ctrl+d: delete account │ l: logout │ esc: back │ q: quit"

func (m mainLoopModel) viewProfile() string {
	state := m.session.State()
	if !state.IsAuthenticated() {
		return renderPage("PROFILE", "Not logged in", "esc: back")
	}
	user := *state.User

	var b strings.Builder
	b.WriteString(m.statusLines())
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("ID         │ %d\n", user.ID))
	b.WriteString(fmt.Sprintf("Name       │ %s\n", valueOrDash(user.Name)))
	b.WriteString(fmt.Sprintf("Age        │ %d\n", user.Age))
	b.WriteString(fmt.Sprintf("Gender     │ %s\n", valueOrDash(user.Gender)))
	b.WriteString(fmt.Sprintf("City       │ %s\n", valueOrDash(user.City)))
	b.WriteString(fmt.Sprintf("Email      │ %s\n", valueOrDash(user.Email)))
	b.WriteString(fmt.Sprintf("Interests  │ %s\n", interestsText(user)))

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), profileHotKeys)
}

func (m mainLoopModel) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.view = viewMatches
	case key.Matches(keyMsg, keys.edit):
		m.startProfileEdit()
	case key.Matches(keyMsg, keys.delete):
		m.confirmDelete = true
	case key.Matches(keyMsg, keys.logout):
		m.busy = true
		return m, m.cmdLogout()
	}
	return m, nil
}

func newProfileForm() form {
	return newForm(
		textField("name", "Full name", ""),
		textField("age", "Age", "18-99"),
		textField("gender", "Gender", "male / female / other"),
		textField("city", "City", ""),
		textField("email", "Email", ""),
		textField("interests", "Interests", "music, hiking"),
	)
}

// startProfileEdit opens the edit form prefilled with the cached user.
func (m *mainLoopModel) startProfileEdit() {
	state := m.session.State()
	if !state.IsAuthenticated() {
		return
	}
	user := state.User

	m.profileForm = newProfileForm()
	m.profileForm.setValue("name", user.Name)
	m.profileForm.setValue("age", strconv.Itoa(user.Age))
	m.profileForm.setValue("gender", user.Gender)
	m.profileForm.setValue("city", user.City)
	m.profileForm.setValue("email", user.Email)
	m.profileForm.setValue("interests", strings.Join(user.InterestNames(), ", "))
	m.errMsg = ""
	m.view = viewProfileEdit
}

func (m mainLoopModel) updateProfileEdit(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.view = viewProfile
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.profileForm.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.profileForm.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		update, errs := m.profileUpdate()
		if len(errs) > 0 {
			m.profileForm.setErrors(errs)
			m.errMsg = ""
			return m, nil
		}
		m.profileForm.clearErrors()
		m.errMsg = ""
		m.saving = true
		return m, m.cmdSaveProfile(update)
	}

	return m, m.profileForm.update(keyMsg)
}

// profileUpdate reads the edit form. Blank inputs are left out of the update.
func (m *mainLoopModel) profileUpdate() (models.UserUpdate, map[string]string) {
	update := models.UserUpdate{
		Name:      optionalString(m.profileForm.value("name")),
		City:      optionalString(m.profileForm.value("city")),
		Email:     optionalString(m.profileForm.value("email")),
		Interests: splitInterests(m.profileForm.value("interests")),
	}
	if gender := optionalString(m.profileForm.value("gender")); gender != nil {
		g := strings.ToLower(*gender)
		update.Gender = &g
	}
	if len(update.Interests) == 0 {
		update.Interests = nil
	}

	errs := map[string]string{}
	var ok bool
	if update.Age, ok = parseOptionalInt(m.profileForm.value("age")); !ok {
		errs["age"] = msgAgeNotNumber
	}

	if err := m.validator.Validate(m.ctx, update); err != nil {
		for field, msg := range validators.FieldErrors(err) {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}

	return update, errs
}

func (m mainLoopModel) viewProfileEdit() string {
	var b strings.Builder
	b.WriteString(m.statusLines())
	b.WriteString(m.profileForm.view())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Interests, comma separated: " + strings.Join(suggestedInterests, ", ")))
	b.WriteString("\n")
	if m.saving {
		b.WriteString("\n" + m.spinner.View() + " Saving...\n")
	}

	return renderPage(
		"EDIT PROFILE",
		strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ esc: cancel",
	)
}

// cmdSaveProfile sends the update, refreshes the cached user and then
// re-fetches the matches, since age, city and interests drive them.
func (m mainLoopModel) cmdSaveProfile(update models.UserUpdate) tea.Cmd {
	ctx := m.ctx
	store := m.session
	profile := m.profile
	query := m.query

	return func() tea.Msg {
		state := store.State()
		if !state.IsAuthenticated() {
			return profileSavedMsg{err: session.ErrNotAuthenticated}
		}

		user, err := profile.UpdateProfile(ctx, state.User.ID, update)
		if err != nil {
			return profileSavedMsg{err: err}
		}
		if err = store.UpdateUser(ctx, user); err != nil {
			return profileSavedMsg{err: err}
		}
		if err = query.SetUser(ctx, &user); err == nil {
			// same id: SetUser kept the results, refresh them explicitly
			err = query.Fetch(ctx)
		}
		return profileSavedMsg{user: user, fetchErr: err}
	}
}
