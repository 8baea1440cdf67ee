// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/matches"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/tui"
	"github.com/MKhiriev/go-match-client/models"
)

const msgLoggedOut = "You have been logged out."

// UI is the part of the terminal interface the runtime drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.User, error)
	MainLoop(ctx context.Context) (logout bool, err error)
}

// App ties the session, the match query and the terminal UI into one
// process lifecycle.
type App struct {
	ui      UI
	session *session.Store
	query   *matches.Query
	logger  *logger.Logger
}

func NewApp(ui UI, sessionStore *session.Store, query *matches.Query, logger *logger.Logger) (*App, error) {
	if ui == nil || sessionStore == nil || query == nil {
		return nil, errors.New("client: ui, session and query are required")
	}
	return &App{ui: ui, session: sessionStore, query: query, logger: logger}, nil
}

// Run restores the persisted session, then alternates between the login
// flow and the main loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.session.Subscribe(func(prev, next session.State) {
		a.logger.Debug().
			Stringer("from", prev.Status).
			Stringer("to", next.Status).
			Msg("session state changed")
	})
	defer unsubscribe()

	if err := a.session.Hydrate(ctx); err != nil {
		// the session stays anonymous, the user can still log in
		a.logger.Err(err).Msg("failed to restore session")
	}

	notice := ""
	for {
		if !a.session.State().IsAuthenticated() {
			user, err := a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
			a.logger.Info().Int64("user_id", user.ID).Msg("signed in")
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		_ = a.query.SetUser(ctx, nil)
		notice = msgLoggedOut
	}
}
