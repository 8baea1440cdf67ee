// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/matches"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two terminal programs of the client: the login flow for an
// anonymous session and the main loop for an authenticated one.
type TUI struct {
	session   *session.Store
	query     *matches.Query
	services  *service.ClientServices
	validator validators.Validator
	buildInfo models.AppBuildInfo

	// options are appended to every tea.NewProgram call.
	options []tea.ProgramOption

	logger *logger.Logger
}

func New(
	sessionStore *session.Store,
	query *matches.Query,
	services *service.ClientServices,
	validator validators.Validator,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if sessionStore == nil || query == nil || services == nil || validator == nil {
		return nil, errors.New("tui: session, query, services and validator are required")
	}

	return &TUI{
		session:   sessionStore,
		query:     query,
		services:  services,
		validator: validator,
		buildInfo: buildInfo,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger,
	}, nil
}

// LoginFlow shows the menu until the user logs in or registers. notice, if
// set, is shown on the menu (e.g. after a logout). Returns [ErrUserQuit]
// when the user leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.User, error) {
	menu := NewMenuModel()
	menu.status = notice

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.session, t.validator),
		pageRegister: NewRegisterModel(ctx, t.session, t.validator),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user == nil {
		return models.User{}, ErrUserQuit
	}

	t.logger.Debug().Int64("user_id", result.user.ID).Msg("login flow finished")
	return *result.user, nil
}

// MainLoop shows the matches of the signed-in user. logout is true when the
// session ended inside the loop (logout or account deletion).
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.session, t.query, t.services.ProfileService, t.validator)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := make([]tea.ProgramOption, 0, len(t.options)+1)
	opts = append(opts, t.options...)
	return append(opts, tea.WithContext(ctx))
}
