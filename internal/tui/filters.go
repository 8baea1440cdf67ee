// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgMinAgeNotNumber = "Minimum age must be a number"
	msgMaxAgeNotNumber = "Maximum age must be a number"
)

func newFilterForm() form {
	return newForm(
		textField(models.FilterMinAge, "Min age", "any"),
		textField(models.FilterMaxAge, "Max age", "any"),
		textField(models.FilterCity, "City", "any"),
	)
}

// openFilters fills the panel from the filters currently held by the query.
func (m *mainLoopModel) openFilters() {
	m.filterForm = newFilterForm()
	m.fillFilterForm(m.query.Filters())
	m.errMsg = ""
	m.view = viewFilters
}

func (m *mainLoopModel) fillFilterForm(f models.MatchFilters) {
	m.filterForm.clearErrors()
	m.filterForm.setValue(models.FilterMinAge, intText(f.MinAge))
	m.filterForm.setValue(models.FilterMaxAge, intText(f.MaxAge))
	city := ""
	if f.City != nil {
		city = *f.City
	}
	m.filterForm.setValue(models.FilterCity, city)
	m.interestMatch = f.Clone().InterestMatch
}

// updateFilters edits the panel. Nothing is fetched until enter.
func (m mainLoopModel) updateFilters(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.view = viewMatches
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.filterForm.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.filterForm.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.toggle):
		m.interestMatch = nextInterestMatch(m.interestMatch)
		return m, nil
	case key.Matches(keyMsg, keys.reset):
		m.query.Reset()
		m.fillFilterForm(m.query.Filters())
		m.status = "Filters reset"
		return m, cmdClearStatus()
	case key.Matches(keyMsg, keys.enter):
		filters, errs := m.filtersFromForm()
		if len(errs) > 0 {
			m.filterForm.setErrors(errs)
			return m, nil
		}
		m.query.SetFilters(filters)
		m.view = viewMatches
		m.idx = 0
		m.errMsg = ""
		return m, m.cmdFetch()
	}

	return m, m.filterForm.update(keyMsg)
}

func (m *mainLoopModel) filtersFromForm() (models.MatchFilters, map[string]string) {
	errs := map[string]string{}
	filters := models.MatchFilters{
		City:          optionalString(m.filterForm.value(models.FilterCity)),
		InterestMatch: m.interestMatch,
	}

	var ok bool
	if filters.MinAge, ok = parseOptionalInt(m.filterForm.value(models.FilterMinAge)); !ok {
		errs[models.FilterMinAge] = msgMinAgeNotNumber
	}
	if filters.MaxAge, ok = parseOptionalInt(m.filterForm.value(models.FilterMaxAge)); !ok {
		errs[models.FilterMaxAge] = msgMaxAgeNotNumber
	}

	if err := m.validator.Validate(m.ctx, filters); err != nil {
		for field, msg := range validators.FieldErrors(err) {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}

	return filters, errs
}

func (m mainLoopModel) viewFilters() string {
	var b strings.Builder
	b.WriteString(m.statusLines())
	b.WriteString(m.filterForm.view())
	b.WriteString("\n")
	b.WriteString("Shared interests only: ")
	b.WriteString(interestMatchText(m.interestMatch))
	b.WriteString("\n")

	return renderPage(
		"FILTERS",
		strings.TrimRight(b.String(), "\n"),
		"enter: apply │ ctrl+r: reset │ ctrl+t: shared interests │ tab: next field │ esc: back",
	)
}

// nextInterestMatch cycles yes -> no -> any -> yes.
func nextInterestMatch(v *bool) *bool {
	switch {
	case v == nil:
		t := true
		return &t
	case *v:
		f := false
		return &f
	default:
		return nil
	}
}

func interestMatchText(v *bool) string {
	switch {
	case v == nil:
		return "any"
	case *v:
		return "yes"
	default:
		return "no"
	}
}

func intText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
