// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginCredentials is what the login form collects.
//
// The password is validated for shape only. The simulated login never sends
// or checks it.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterCredentials is what the registration form collects: the login
// pair plus every field of [UserCreate].
type RegisterCredentials struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"required,min=18,max=99"`
	Gender    string   `json:"gender" validate:"required,oneof=male female other"`
	City      string   `json:"city" validate:"required"`
	Interests []string `json:"interests" validate:"required,min=1,dive,required"`
}

// UserCreate drops the password and returns the backend create body.
func (r RegisterCredentials) UserCreate() UserCreate {
	return UserCreate{
		Name:      r.Name,
		Age:       r.Age,
		Gender:    r.Gender,
		Email:     r.Email,
		City:      r.City,
		Interests: r.Interests,
	}
}

// AuthResult is the outcome of a successful login or registration: the
// session token and the user it belongs to.
type AuthResult struct {
	Token string
	User  User
}
