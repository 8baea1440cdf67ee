// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether tokenString is a JWT whose exp claim lies at
// or before now. The signature is not verified: the client never holds the
// signing key and only uses the claim to discard stale sessions early.
//
// Tokens that are not JWT-shaped (for example the backend's opaque mock
// tokens) and JWTs without an exp claim never expire.
func TokenExpired(tokenString string, now time.Time) bool {
	if strings.Count(tokenString, ".") != 2 {
		return false
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.After(now)
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
