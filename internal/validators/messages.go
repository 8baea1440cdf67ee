// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-match-client/models"
)

type messageKey struct {
	field string
	tag   string
}

var messages = map[messageKey]string{
	{"email", "required"}:     "Email is required",
	{"email", "email"}:        "Invalid email address",
	{"password", "required"}:  "Password is required",
	{"password", "min"}:       "Password must be at least 6 characters",
	{"name", "required"}:      "Name is required",
	{"age", "required"}:       "Age is required",
	{"age", "min"}:            "You must be at least 18 years old",
	{"age", "max"}:            "Age must be less than 100",
	{"gender", "required"}:    "Gender is required",
	{"gender", "oneof"}:       "Gender must be male, female, or other",
	{"city", "required"}:      "City is required",
	{"interests", "required"}: "Interests are required",
	{"interests", "min"}:      "At least one interest is required",

	{models.FilterMinAge, "min"}:          "Minimum age must be at least 18",
	{models.FilterMinAge, "max"}:          "Minimum age must be less than 100",
	{models.FilterMaxAge, "min"}:          "Maximum age must be at least 18",
	{models.FilterMaxAge, "max"}:          "Maximum age must be less than 100",
	{models.FilterMaxAge, tagMinNotAbove}: "Maximum age must not be below minimum age",
}

// elementMessages cover `dive` rules on list elements such as interests[0].
var elementMessages = map[messageKey]string{
	{"interests", "required"}: "Interests must not be empty",
}

func message(field, tag string, element bool) string {
	table := messages
	if element {
		table = elementMessages
	}
	if msg, ok := table[messageKey{field, tag}]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}
