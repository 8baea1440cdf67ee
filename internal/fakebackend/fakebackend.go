// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakebackend is an in-memory stand-in for the matchmaking REST
// backend. It serves the /users surface the client consumes, returns canned
// matches and records every request so tests can assert on headers and
// query parameters.
package fakebackend

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-match-client/internal/utils"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RecordedRequest is one request observed by the backend.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	// Token is the bearer token from Authorization, empty when absent.
	Token   string
	TraceID string
}

// Backend holds users and canned matches in memory.
type Backend struct {
	mu        sync.Mutex
	users     map[int64]models.User
	interests map[string]models.Interest
	matches   map[int64][]int64
	nextID    int64
	nextTagID int64
	failures  map[string]int
	requests  []RecordedRequest
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{
		users:     make(map[int64]models.User),
		interests: make(map[string]models.Interest),
		matches:   make(map[int64][]int64),
		failures:  make(map[string]int),
	}
}

// Start serves the backend on a local httptest server that is closed when
// the test ends.
func Start(t interface{ Cleanup(func()) }) (*Backend, *httptest.Server) {
	b := New()
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return b, srv
}

// Router builds the chi router for the backend.
func (b *Backend) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(b.record)
	router.Use(b.injectFailures)

	router.Get("/users/", b.listUsers)
	router.Post("/users/", b.createUser)
	router.Route("/users/{id}", func(r chi.Router) {
		r.Get("/", b.getUser)
		r.Put("/", b.updateUser)
		r.Delete("/", b.deleteUser)
		r.Get("/matches", b.getMatches)
	})

	return router
}

// Seed stores users as-is, assigning ids to users without one, and returns
// the stored records.
func (b *Backend) Seed(users ...models.UserCreate) []models.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]models.User, 0, len(users))
	for _, u := range users {
		stored = append(stored, b.insertLocked(u))
	}
	return stored
}

// SetMatches fixes the match list returned for userID, in order.
func (b *Backend) SetMatches(userID int64, matchIDs ...int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.matches[userID] = matchIDs
}

// FailNext makes the next n requests whose "METHOD path" matches key answer
// with 500. Example key: "GET /users/".
func (b *Backend) FailNext(key string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[key] = n
}

// User returns the stored user with id.
func (b *Backend) User(id int64) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[id]
	return u, ok
}

// Requests returns a copy of every request seen so far.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.requests)
}

// RequestCount returns the number of requests seen so far.
func (b *Backend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ := utils.ParseBearerToken(r.Header.Get("Authorization"))

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			Token:         token,
			TraceID:       r.Header.Get("X-Trace-ID"),
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		b.mu.Lock()
		n := b.failures[key]
		if n > 0 {
			b.failures[key] = n - 1
		}
		b.mu.Unlock()

		if n > 0 {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// insertLocked stores u with lower-cased interests shared across users.
func (b *Backend) insertLocked(u models.UserCreate) models.User {
	b.nextID++
	user := models.User{
		ID:        b.nextID,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    strings.ToLower(u.Gender),
		Email:     u.Email,
		City:      u.City,
		Interests: b.interestsLocked(u.Interests),
	}
	b.users[user.ID] = user
	return user
}

func (b *Backend) interestsLocked(names []string) []models.Interest {
	out := make([]models.Interest, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(name)
		tag, ok := b.interests[name]
		if !ok {
			b.nextTagID++
			tag = models.Interest{ID: b.nextTagID, Name: name}
			b.interests[name] = tag
		}
		out = append(out, tag)
	}
	return out
}

func (b *Backend) emailTakenLocked(email string, except int64) bool {
	for id, u := range b.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (b *Backend) sortedUsersLocked() []models.User {
	ids := make([]int64, 0, len(b.users))
	for id := range b.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, b.users[id])
	}
	return users
}
