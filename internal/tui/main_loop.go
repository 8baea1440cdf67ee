package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-match-client/internal/app"
	"github.com/MKhiriev/go-match-client/internal/matches"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type mainView int

const (
	viewMatches mainView = iota
	viewMatchDetail
	viewFilters
	viewProfile
	viewProfileEdit
)

const statusTTL = 2 * time.Second

const msgSessionNotCleared = "the saved session could not be removed from this device. Remove the local storage file to clear it."

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	session   *session.Store
	query     *matches.Query
	profile   service.ClientProfileService
	validator validators.Validator

	view    mainView
	idx     int
	spinner spinner.Model
	status  string
	errMsg  string
	overlay *errorOverlayModel

	filterForm    form
	interestMatch *bool

	profileForm   form
	saving        bool
	confirmDelete bool
	busy          bool

	logout bool
}

func newMainLoopModel(ctx context.Context, sessionStore *session.Store, query *matches.Query, profile service.ClientProfileService, validator validators.Validator) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		session:   sessionStore,
		query:     query,
		profile:   profile,
		validator: validator,
		spinner:   s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdMount())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case matchesLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeRequestError(msg.err, app.MsgFetchMatchesFailed)
		} else {
			m.errMsg = ""
		}
		m.clampIndex()
		return m, nil
	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.profileForm.setErrors(validators.FieldErrors(msg.err))
			m.errMsg = humanizeRequestError(msg.err, app.MsgProfileUpdateFailed)
			return m, nil
		}
		m.view = viewProfile
		m.errMsg = ""
		if msg.fetchErr != nil {
			m.errMsg = humanizeRequestError(msg.fetchErr, app.MsgFetchMatchesFailed)
		}
		m.clampIndex()
		m.status = "Profile updated"
		return m, cmdClearStatus()
	case accountDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeRequestError(msg.err, app.MsgDeleteAccountFailed)}
			return m, nil
		}
		m.logout = true
		if msg.cleanupErr != nil {
			m.overlay = &errorOverlayModel{message: "Account deleted, but " + msgSessionNotCleared}
			return m, nil
		}
		return m, tea.Quit
	case logoutDoneMsg:
		// the session is reset even when storage could not be cleared
		m.busy = false
		m.logout = true
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Logged out, but " + msgSessionNotCleared}
			return m, nil
		}
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Email copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
			if m.logout {
				// the session already ended, leave once the user has read it
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	if m.confirmDelete {
		return m.updateConfirmDelete(keyMsg)
	}

	switch m.view {
	case viewMatchDetail:
		return m.updateMatchDetail(keyMsg)
	case viewFilters:
		return m.updateFilters(keyMsg)
	case viewProfile:
		return m.updateProfile(keyMsg)
	case viewProfileEdit:
		return m.updateProfileEdit(keyMsg)
	default:
		return m.updateMatches(keyMsg)
	}
}

// updateInputs forwards non-key messages (cursor blink) to the open form.
func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewFilters:
		return m, m.filterForm.update(msg)
	case viewProfileEdit:
		return m, m.profileForm.update(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateMatches(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.query.Snapshot()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(snap.Matches)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(snap); !ok {
			m.status = "No matches"
			return m, nil
		}
		m.view = viewMatchDetail
	case key.Matches(keyMsg, keys.refresh):
		m.errMsg = ""
		return m, m.cmdFetch()
	case key.Matches(keyMsg, keys.filters):
		m.openFilters()
	case key.Matches(keyMsg, keys.favorite):
		return m.toggleFavorite(snap)
	case key.Matches(keyMsg, keys.copyEmail):
		return m.copyEmail(snap)
	case key.Matches(keyMsg, keys.profile):
		m.errMsg = ""
		m.view = viewProfile
	case key.Matches(keyMsg, keys.logout):
		m.busy = true
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) updateMatchDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.query.Snapshot()
	if _, ok := m.current(snap); !ok {
		m.view = viewMatches
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.view = viewMatches
	case key.Matches(keyMsg, keys.favorite):
		return m.toggleFavorite(snap)
	case key.Matches(keyMsg, keys.copyEmail):
		return m.copyEmail(snap)
	}
	return m, nil
}

func (m mainLoopModel) toggleFavorite(snap matches.Snapshot) (tea.Model, tea.Cmd) {
	match, ok := m.current(snap)
	if !ok {
		return m, nil
	}
	if m.query.ToggleFavorite(match.ID) {
		m.status = match.Name + " added to favorites"
	} else {
		m.status = match.Name + " removed from favorites"
	}
	return m, cmdClearStatus()
}

func (m mainLoopModel) copyEmail(snap matches.Snapshot) (tea.Model, tea.Cmd) {
	match, ok := m.current(snap)
	if !ok || strings.TrimSpace(match.Email) == "" {
		m.status = "Nothing to copy"
		return m, nil
	}
	return m, cmdCopyEmail(match.Email)
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		m.busy = true
		return m, m.cmdDeleteAccount()
	case key.Matches(keyMsg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirmDelete {
		return confirmModel{message: "Delete your account? This cannot be undone."}.View()
	}

	switch m.view {
	case viewMatchDetail:
		return m.viewMatchDetail()
	case viewFilters:
		return m.viewFilters()
	case viewProfile:
		return m.viewProfile()
	case viewProfileEdit:
		return m.viewProfileEdit()
	default:
		return m.viewMatches()
	}
}

// header is re-read from the session on every render.
func (m mainLoopModel) header() string {
	state := m.session.State()
	if !state.IsAuthenticated() {
		return "Not logged in"
	}
	return fmt.Sprintf("Logged in as %s <%s>", state.User.Name, state.User.Email)
}

func (m mainLoopModel) statusLines() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m mainLoopModel) current(snap matches.Snapshot) (models.User, bool) {
	if len(snap.Matches) == 0 || m.idx < 0 || m.idx >= len(snap.Matches) {
		return models.User{}, false
	}
	return snap.Matches[m.idx], true
}

func (m *mainLoopModel) clampIndex() {
	n := len(m.query.Snapshot().Matches)
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) cmdMount() tea.Cmd {
	ctx := m.ctx
	query := m.query
	store := m.session

	return func() tea.Msg {
		return matchesLoadedMsg{err: query.Mount(ctx, store.State().User)}
	}
}

func (m mainLoopModel) cmdFetch() tea.Cmd {
	ctx := m.ctx
	query := m.query

	return func() tea.Msg {
		return matchesLoadedMsg{err: query.Fetch(ctx)}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	query := m.query
	store := m.session

	return func() tea.Msg {
		err := store.Logout(ctx)
		if queryErr := query.SetUser(ctx, nil); err == nil {
			err = queryErr
		}
		return logoutDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	query := m.query
	store := m.session
	profile := m.profile

	return func() tea.Msg {
		state := store.State()
		if !state.IsAuthenticated() {
			return accountDeletedMsg{err: session.ErrNotAuthenticated}
		}
		if err := profile.DeleteAccount(ctx, state.User.ID); err != nil {
			return accountDeletedMsg{err: err}
		}
		// the account is gone: a failed local cleanup does not undo that
		err := store.Logout(ctx)
		if queryErr := query.SetUser(ctx, nil); err == nil {
			err = queryErr
		}
		return accountDeletedMsg{cleanupErr: err}
	}
}

func cmdCopyEmail(email string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(email)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
