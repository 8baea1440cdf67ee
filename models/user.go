// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity record owned by the matchmaking backend.
// The client keeps one cached copy of the authenticated user in the session
// and receives lists of users as match candidates.
type User struct {
	// ID is the backend-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name shown on match cards.
	Name string `json:"name"`

	// Age is an integer in the range accepted by the backend (18..99).
	Age int `json:"age"`

	// Gender is one of "male", "female" or "other".
	Gender string `json:"gender"`

	// Email is unique per user and is what the simulated login matches on.
	Email string `json:"email"`

	// City is free text and is compared verbatim by the city filter.
	City string `json:"city"`

	// Interests is the many-to-many interest list.
	Interests []Interest `json:"interests"`
}

// InterestNames returns the plain interest names in backend order.
func (u User) InterestNames() []string {
	names := make([]string, 0, len(u.Interests))
	for _, i := range u.Interests {
		names = append(names, i.Name)
	}
	return names
}

// Interest is a named hobby shared between users.
type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserCreate is the body of POST /users/.
type UserCreate struct {
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"required,min=18,max=99"`
	Gender    string   `json:"gender" validate:"required,oneof=male female other"`
	Email     string   `json:"email" validate:"required,email"`
	City      string   `json:"city" validate:"required"`
	Interests []string `json:"interests" validate:"required,min=1,dive,required"`
}

// UserUpdate is the body of PUT /users/:id. Nil fields are left unchanged by
// the backend and are omitted from the request body.
type UserUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty"`
	Age       *int     `json:"age,omitempty" validate:"omitempty,min=18,max=99"`
	Gender    *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Email     *string  `json:"email,omitempty" validate:"omitempty,email"`
	City      *string  `json:"city,omitempty" validate:"omitempty"`
	Interests []string `json:"interests,omitempty" validate:"omitempty,dive,required"`
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Gender == nil &&
		u.Email == nil && u.City == nil && u.Interests == nil
}
