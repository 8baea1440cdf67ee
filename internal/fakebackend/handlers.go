// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-match-client/internal/utils"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/go-chi/chi/v5"
)

const (
	detailUserNotFound = "User not found"
	detailEmailTaken   = "Email already registered"
)

func (b *Backend) listUsers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	users := b.sortedUsersLocked()
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (b *Backend) createUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	b.mu.Lock()
	if b.emailTakenLocked(in.Email, 0) {
		b.mu.Unlock()
		utils.WriteError(w, detailEmailTaken, http.StatusBadRequest)
		return
	}
	user := b.insertLocked(in)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (b *Backend) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	user, found := b.User(id)
	if !found {
		utils.WriteError(w, detailUserNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (b *Backend) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var in models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	user, found := b.users[id]
	if !found {
		utils.WriteError(w, detailUserNotFound, http.StatusNotFound)
		return
	}
	if in.Email != nil && *in.Email != user.Email && b.emailTakenLocked(*in.Email, id) {
		utils.WriteError(w, detailEmailTaken, http.StatusBadRequest)
		return
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.Interests != nil {
		user.Interests = b.interestsLocked(in.Interests)
	}
	b.users[id] = user

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (b *Backend) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	_, found := b.users[id]
	delete(b.users, id)
	delete(b.matches, id)
	b.mu.Unlock()

	if !found {
		utils.WriteError(w, detailUserNotFound, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getMatches answers with the canned list for the user. Filters are recorded
// but not applied: ranking and filtering belong to the real backend.
func (b *Backend) getMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	if _, found := b.users[id]; !found {
		b.mu.Unlock()
		utils.WriteError(w, detailUserNotFound, http.StatusNotFound)
		return
	}
	matches := make([]models.User, 0, len(b.matches[id]))
	for _, matchID := range b.matches[id] {
		if u, found := b.users[matchID]; found {
			matches = append(matches, u)
		}
	}
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.MatchResponse{Matches: matches, MatchCount: len(matches)}, http.StatusOK)
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid user id", http.StatusUnprocessableEntity)
		return 0, false
	}
	return id, true
}
