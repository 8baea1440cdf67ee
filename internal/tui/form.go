// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labelled input. name is the field name used by the
// validators, so their messages land under the right input.
type formField struct {
	name  string
	label string
	input textinput.Model
}

func textField(name, label, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.CharLimit = 256
	return formField{name: name, label: label, input: in}
}

func passwordField(name, label string) formField {
	f := textField(name, label, "at least 6 characters")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

type form struct {
	fields []formField
	focus  int
	errors map[string]string
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) index(name string) int {
	for i := range f.fields {
		if f.fields[i].name == name {
			return i
		}
	}
	return -1
}

func (f *form) value(name string) string {
	if i := f.index(name); i >= 0 {
		return f.fields[i].input.Value()
	}
	return ""
}

func (f *form) setValue(name, v string) {
	if i := f.index(name); i >= 0 {
		f.fields[i].input.SetValue(v)
	}
}

func (f *form) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) setErrors(errs map[string]string) {
	f.errors = errs
}

func (f *form) clearErrors() {
	f.errors = nil
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.errors = nil
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f form) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, "Field", "Value"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, field.label, field.input.View()))
		if msg := f.errors[field.name]; msg != "" {
			b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, "", errorStyle.Render(msg)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
