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

const msgAgeNotNumber = "Age must be a number"

// RegisterModel is the registration page. A successful registration also
// logs the new user in, so its [AuthResult] ends the login flow like a
// login does.
type RegisterModel struct {
	ctx       context.Context
	session   *session.Store
	validator validators.Validator

	form       form
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with the name field focused.
func NewRegisterModel(ctx context.Context, sessionStore *session.Store, validator validators.Validator) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		session:   sessionStore,
		validator: validator,
		form: newForm(
			textField("name", "Full name", "Jane Doe"),
			textField("age", "Age", "18-99"),
			textField("gender", "Gender", "male / female / other"),
			textField("city", "City", "Paris"),
			textField("email", "Email", "you@example.com"),
			passwordField("password", "Password"),
			textField("interests", "Interests", "music, hiking"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.form.setErrors(validators.FieldErrors(result.Err))
			m.errMsg = humanizeRequestError(result.Err, app.MsgRegistrationFailed)
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

			creds, errs := m.credentials()
			if len(errs) > 0 {
				m.form.setErrors(errs)
				m.errMsg = ""
				return m, nil
			}

			m.form.clearErrors()
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(creds)
		}
	}

	return m, m.form.update(msg)
}

// credentials reads the form and returns the per-field errors, if any.
func (m *RegisterModel) credentials() (models.RegisterCredentials, map[string]string) {
	creds := models.RegisterCredentials{
		Name:      strings.TrimSpace(m.form.value("name")),
		Gender:    strings.ToLower(strings.TrimSpace(m.form.value("gender"))),
		City:      strings.TrimSpace(m.form.value("city")),
		Email:     strings.TrimSpace(m.form.value("email")),
		Password:  m.form.value("password"),
		Interests: splitInterests(m.form.value("interests")),
	}

	errs := map[string]string{}
	age, ok := parseOptionalInt(m.form.value("age"))
	if !ok {
		errs["age"] = msgAgeNotNumber
	} else if age != nil {
		creds.Age = *age
	}

	if err := m.validator.Validate(m.ctx, creds); err != nil {
		for field, msg := range validators.FieldErrors(err) {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}

	return creds, errs
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Interests, comma separated: " + strings.Join(suggestedInterests, ", ")))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(creds models.RegisterCredentials) tea.Cmd {
	ctx := m.ctx
	store := m.session

	return func() tea.Msg {
		user, err := store.Register(ctx, creds)
		return AuthResult{User: user, Err: err}
	}
}
