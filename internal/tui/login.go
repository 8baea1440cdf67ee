// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-match-client/internal/app"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login page. It validates the form locally and then
// hands the credentials to the session store. The resulting [AuthResult]
// is handled by [RootModel], which ends the login flow on success.
type LoginModel struct {
	ctx       context.Context
	session   *session.Store
	validator validators.Validator

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, sessionStore *session.Store, validator validators.Validator) *LoginModel {
	return &LoginModel{
		ctx:       ctx,
		session:   sessionStore,
		validator: validator,
		form: newForm(
			textField("email", "Email", "you@example.com"),
			passwordField("password", "Password"),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult] clears the submitting state and shows the error.
//   - esc goes back to the menu.
//   - tab / shift+tab move the focus.
//   - enter validates and starts the login.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.form.setErrors(validators.FieldErrors(result.Err))
			m.errMsg = humanizeRequestError(result.Err, app.MsgLoginFailed)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			creds := models.LoginCredentials{
				Email:    strings.TrimSpace(m.form.value("email")),
				Password: m.form.value("password"),
			}
			if err := m.validator.Validate(m.ctx, creds); err != nil {
				m.form.setErrors(validators.FieldErrors(err))
				m.errMsg = ""
				return m, nil
			}

			m.form.clearErrors()
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(creds models.LoginCredentials) tea.Cmd {
	ctx := m.ctx
	store := m.session

	return func() tea.Msg {
		user, err := store.Login(ctx, creds)
		return AuthResult{User: user, Err: err}
	}
}
