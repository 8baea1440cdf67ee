// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Query parameter names understood by GET /users/:id/matches.
const (
	FilterMinAge        = "min_age"
	FilterMaxAge        = "max_age"
	FilterCity          = "city"
	FilterInterestMatch = "interest_match"
)

// MatchFilters narrows a match query. A nil field means "no constraint" and
// is never sent to the backend.
type MatchFilters struct {
	MinAge        *int    `json:"min_age,omitempty" validate:"omitempty,min=18,max=99"`
	MaxAge        *int    `json:"max_age,omitempty" validate:"omitempty,min=18,max=99"`
	City          *string `json:"city,omitempty"`
	InterestMatch *bool   `json:"interest_match,omitempty"`
}

// DefaultMatchFilters returns the filters a fresh match view starts with:
// interest matching on, everything else unset.
func DefaultMatchFilters() MatchFilters {
	interestMatch := true
	return MatchFilters{InterestMatch: &interestMatch}
}

// QueryParams returns only the defined filters as query parameters.
func (f MatchFilters) QueryParams() map[string]string {
	params := make(map[string]string, 4)
	if f.MinAge != nil {
		params[FilterMinAge] = strconv.Itoa(*f.MinAge)
	}
	if f.MaxAge != nil {
		params[FilterMaxAge] = strconv.Itoa(*f.MaxAge)
	}
	if f.City != nil {
		params[FilterCity] = *f.City
	}
	if f.InterestMatch != nil {
		params[FilterInterestMatch] = strconv.FormatBool(*f.InterestMatch)
	}
	return params
}

// MatchResponse is the body of GET /users/:id/matches.
type MatchResponse struct {
	Matches    []User `json:"matches"`
	MatchCount int    `json:"match_count"`
}

// Clone returns a deep copy of f.
func (f MatchFilters) Clone() MatchFilters {
	return MatchFilters{
		MinAge:        clonePtr(f.MinAge),
		MaxAge:        clonePtr(f.MaxAge),
		City:          clonePtr(f.City),
		InterestMatch: clonePtr(f.InterestMatch),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
