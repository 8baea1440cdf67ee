// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-match-client/internal/app"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/store"
	"github.com/MKhiriev/go-match-client/internal/utils"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

// Listener is called after every state change with the previous and the new
// state.
type Listener func(prev, next State)

// Store is the process-wide session. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State

	// commitMu serializes persist-then-dispatch so storage and state agree
	// when attempts overlap.
	commitMu sync.Mutex

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int

	storage store.LocalStorage
	auth    service.ClientAuthService
	now     func() time.Time

	logger *logger.Logger
}

// NewStore returns an anonymous session backed by storage. Call
// [Store.Hydrate] to restore a persisted session.
func NewStore(storage store.LocalStorage, auth service.ClientAuthService, logger *logger.Logger) *Store {
	return &Store{
		state:     State{Status: StatusAnonymous},
		listeners: make(map[int]Listener),
		storage:   storage,
		auth:      auth,
		now:       time.Now,
		logger:    logger.Component("session"),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// Hydrate restores the session from local storage without a network call.
// A missing pair leaves the session anonymous. A corrupt pair, a half pair
// or an expired token is removed from storage.
func (s *Store) Hydrate(ctx context.Context) error {
	token, tokenErr := s.storage.Get(ctx, store.KeyToken)
	rawUser, userErr := s.storage.Get(ctx, store.KeyUser)

	if errors.Is(tokenErr, store.ErrKeyNotFound) && errors.Is(userErr, store.ErrKeyNotFound) {
		s.logger.Debug().Msg("no persisted session")
		return nil
	}

	if err := errors.Join(tokenErr, userErr); err != nil {
		return s.discard(ctx, "unreadable session", err)
	}

	if token == "" {
		return s.discard(ctx, "empty token", nil)
	}

	var user *models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return s.discard(ctx, "malformed user", err)
	}
	if user == nil || user.ID <= 0 {
		return s.discard(ctx, "malformed user", nil)
	}

	if utils.TokenExpired(token, s.now()) {
		return s.discard(ctx, "expired token", nil)
	}

	if _, ok := s.dispatch(ActionRestore{Token: token, User: *user}); ok {
		s.auth.UseToken(token)
		s.logger.Info().Int64("user_id", user.ID).Msg("session restored")
	}
	return nil
}

// discard removes a persisted pair that cannot be restored. Hydration
// still succeeds with an anonymous session.
func (s *Store) discard(ctx context.Context, reason string, cause error) error {
	s.logger.Warn().Err(cause).Str("reason", reason).Msg("clearing persisted session")

	if err := s.storage.Delete(ctx, store.KeyToken, store.KeyUser); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// Login authenticates with exactly one backend round trip. On success the
// session is already AUTHENTICATED and persisted when Login returns.
func (s *Store) Login(ctx context.Context, creds models.LoginCredentials) (models.User, error) {
	if s.State().IsAuthenticated() {
		return models.User{}, ErrAlreadyAuthenticated
	}

	s.dispatch(ActionRequest{})
	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.fail(failureMessage(err, app.MsgLoginFailed))
		return models.User{}, err
	}

	return s.commit(ctx, res)
}

// Register creates the account and logs it in, like [Store.Login].
func (s *Store) Register(ctx context.Context, creds models.RegisterCredentials) (models.User, error) {
	if s.State().IsAuthenticated() {
		return models.User{}, ErrAlreadyAuthenticated
	}

	s.dispatch(ActionRequest{})
	res, err := s.auth.Register(ctx, creds)
	if err != nil {
		s.fail(failureMessage(err, app.MsgRegistrationFailed))
		return models.User{}, err
	}

	return s.commit(ctx, res)
}

func (s *Store) commit(ctx context.Context, res models.AuthResult) (models.User, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	rawUser, err := json.Marshal(res.User)
	if err == nil {
		err = s.storage.SetMany(ctx, map[string]string{
			store.KeyToken: res.Token,
			store.KeyUser:  string(rawUser),
		})
	}
	if err != nil {
		s.logger.Err(err).Int64("user_id", res.User.ID).Msg("failed to persist session")
		s.fail(app.MsgSessionSaveFailed)
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	if _, ok := s.dispatch(ActionSuccess{Token: res.Token, User: res.User}); !ok {
		// the session was reset while the attempt was in flight
		if err = s.storage.Delete(ctx, store.KeyToken, store.KeyUser); err != nil {
			s.logger.Err(err).Msg("failed to erase superseded session")
		}
		return models.User{}, ErrSessionSuperseded
	}
	s.auth.UseToken(res.Token)

	s.logger.Info().Int64("user_id", res.User.ID).Msg("session started")
	return res.User, nil
}

func (s *Store) fail(msg string) {
	s.dispatch(ActionFailure{Err: msg})
}

// UpdateUser replaces the cached user and re-persists the user key only.
// Nothing changes when the write fails.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	if !s.State().IsAuthenticated() {
		return ErrNotAuthenticated
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	if err = s.storage.SetMany(ctx, map[string]string{store.KeyUser: string(rawUser)}); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.dispatch(ActionUpdateUser{User: user})
	return nil
}

// Logout erases both storage keys and resets the session. The in-memory
// session is reset even when the storage delete fails.
func (s *Store) Logout(ctx context.Context) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	err := s.storage.Delete(ctx, store.KeyToken, store.KeyUser)
	if err != nil {
		s.logger.Err(err).Msg("failed to erase persisted session")
		err = fmt.Errorf("erase persisted session: %w", err)
	}

	s.dispatch(ActionLogout{})
	s.auth.UseToken("")

	s.logger.Info().Msg("logged out")
	return err
}

// dispatch applies a under the lock and notifies listeners outside of it.
func (s *Store) dispatch(a Action) (State, bool) {
	s.mu.Lock()
	prev := s.state
	next, changed := reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	if changed {
		s.notify(prev.clone(), next.clone())
	}
	return next.clone(), changed
}

func (s *Store) notify(prev, next State) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
}

// failureMessage picks the message kept in state for a failed attempt.
// Business errors keep their own text without the adapter detail chained
// after it.
func failureMessage(err error, fallback string) string {
	for _, known := range []error{service.ErrInvalidCredentials, service.ErrEmailAlreadyRegistered} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if errors.Is(err, validators.ErrValidation) {
		return err.Error()
	}
	return fallback
}
