package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-match-client/internal/adapter"
	"github.com/MKhiriev/go-match-client/internal/config"
	"github.com/MKhiriev/go-match-client/internal/fakebackend"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/matches"
	"github.com/MKhiriev/go-match-client/internal/mock"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/internal/session"
	"github.com/MKhiriev/go-match-client/internal/store"
	"github.com/MKhiriev/go-match-client/internal/validators"
	"github.com/MKhiriev/go-match-client/models"
)

type uiEnv struct {
	backend  *fakebackend.Backend
	services *service.ClientServices
	session  *session.Store
	query    *matches.Query
	alice    models.User
	bob      models.User
}

// newUIEnv signs alice in against a fake backend that matches her with bob.
func newUIEnv(t *testing.T) *uiEnv {
	t.Helper()
	return newUIEnvWithStorage(t, store.NewFileLocalStorage(filepath.Join(t.TempDir(), "session.json"), logger.Nop()))
}

func newUIEnvWithStorage(t *testing.T, storage store.LocalStorage) *uiEnv {
	t.Helper()

	backend, srv := fakebackend.Start(t)
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, validators.NewFormValidator(), logger.Nop())
	sessionStore := session.NewStore(storage, services.AuthService, logger.Nop())

	users := backend.Seed(
		models.UserCreate{Name: "Alice", Age: 28, Gender: "female", Email: "alice@example.com", City: "Paris", Interests: []string{"music"}},
		models.UserCreate{Name: "Bob", Age: 31, Gender: "male", Email: "bob@example.com", City: "Paris", Interests: []string{"music", "hiking"}},
	)
	backend.SetMatches(users[0].ID, users[1].ID)

	_, err = sessionStore.Login(context.Background(), models.LoginCredentials{Email: users[0].Email, Password: "secret1"})
	require.NoError(t, err)

	return &uiEnv{
		backend:  backend,
		services: services,
		session:  sessionStore,
		query:    matches.NewQuery(services.MatchService, logger.Nop()),
		alice:    users[0],
		bob:      users[1],
	}
}

// mounted returns a main loop model with the first page of matches loaded.
func (e *uiEnv) mounted(t *testing.T) mainLoopModel {
	t.Helper()
	m := newMainLoopModel(context.Background(), e.session, e.query, e.services.ProfileService, validators.NewFormValidator())
	return run(t, m, m.cmdMount())
}

// matchRequests counts the match fetches the backend has seen.
func (e *uiEnv) matchRequests() int {
	n := 0
	for _, r := range e.backend.Requests() {
		if strings.HasSuffix(r.Path, "/matches") {
			n++
		}
	}
	return n
}

// failingDeleteStorage accepts writes but cannot erase the session.
func failingDeleteStorage(t *testing.T) *mock.MockLocalStorage {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockLocalStorage(ctrl)
	storage.EXPECT().SetMany(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system")).AnyTimes()
	return storage
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m mainLoopModel, k tea.KeyMsg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

// run executes cmd synchronously and feeds its message back into m.
func run(t *testing.T, m mainLoopModel, cmd tea.Cmd) mainLoopModel {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model
}

func TestMainLoop_MountShowsMatches(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	assert.Empty(t, m.errMsg)
	view := m.View()
	assert.Contains(t, view, "Logged in as Alice <alice@example.com>")
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "1 matches")
}

func TestMainLoop_OpenDetailAndBack(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewMatchDetail, m.view)
	assert.Contains(t, m.View(), "bob@example.com")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMatches, m.view)
}

func TestMainLoop_FavoriteToggle(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("s"))
	assert.True(t, env.query.IsFavorite(env.bob.ID))
	assert.Equal(t, "Bob added to favorites", m.status)

	m, _ = press(t, m, runes("s"))
	assert.False(t, env.query.IsFavorite(env.bob.ID))
	assert.Equal(t, "Bob removed from favorites", m.status)
}

func TestMainLoop_CopyEmail(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, cmd := press(t, m, runes("c"))
	m = run(t, m, cmd)
	assert.Equal(t, env.bob.Email, copied)
	assert.Equal(t, "Email copied to clipboard", m.status)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, cmd = press(t, m, runes("c"))
	m = run(t, m, cmd)
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestMainLoop_FiltersValidation(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)
	requestsBefore := env.backend.RequestCount()

	m, _ = press(t, m, runes("f"))
	require.Equal(t, viewFilters, m.view)

	m.filterForm.setValue(models.FilterMinAge, "abc")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, msgMinAgeNotNumber, m.filterForm.errors[models.FilterMinAge])

	m.filterForm.setValue(models.FilterMinAge, "40")
	m.filterForm.setValue(models.FilterMaxAge, "30")
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.filterForm.errors[models.FilterMaxAge])
	assert.Equal(t, viewFilters, m.view)

	assert.Equal(t, requestsBefore, env.backend.RequestCount())
}

func TestMainLoop_FiltersApply(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("f"))
	m.filterForm.setValue(models.FilterMinAge, "25")
	m.filterForm.setValue(models.FilterCity, " Paris ")
	assert.Contains(t, m.View(), "Shared interests only: yes")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Contains(t, m.View(), "Shared interests only: no")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewMatches, m.view)
	m = run(t, m, cmd)
	assert.Empty(t, m.errMsg)

	filters := env.query.Filters()
	require.NotNil(t, filters.MinAge)
	assert.Equal(t, 25, *filters.MinAge)
	assert.Nil(t, filters.MaxAge)
	require.NotNil(t, filters.City)
	assert.Equal(t, "Paris", *filters.City)
	require.NotNil(t, filters.InterestMatch)
	assert.False(t, *filters.InterestMatch)

	reqs := env.backend.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, "25", last.Query.Get(models.FilterMinAge))
	assert.Equal(t, "Paris", last.Query.Get(models.FilterCity))
	assert.Equal(t, "false", last.Query.Get(models.FilterInterestMatch))
	assert.False(t, last.Query.Has(models.FilterMaxAge))
}

func TestMainLoop_FiltersReset(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)
	requestsBefore := env.backend.RequestCount()

	city := "Lyon"
	env.query.SetFilters(models.MatchFilters{City: &city})

	m, _ = press(t, m, runes("f"))
	assert.Equal(t, "Lyon", m.filterForm.value(models.FilterCity))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "", m.filterForm.value(models.FilterCity))
	assert.Equal(t, "Filters reset", m.status)
	assert.Equal(t, models.DefaultMatchFilters(), env.query.Filters())
	assert.Equal(t, requestsBefore, env.backend.RequestCount())
}

func TestMainLoop_ProfileEdit(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	require.Equal(t, viewProfile, m.view)
	assert.Contains(t, m.View(), "alice@example.com")

	m, _ = press(t, m, runes("e"))
	require.Equal(t, viewProfileEdit, m.view)
	assert.Equal(t, "Alice", m.profileForm.value("name"))
	assert.Equal(t, "28", m.profileForm.value("age"))
	assert.Equal(t, "music", m.profileForm.value("interests"))

	m.profileForm.setValue("city", "Lyon")
	m.profileForm.setValue("interests", "Music, Yoga")
	fetches := env.matchRequests()
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.saving)
	m = run(t, m, cmd)

	// the edited profile drives the matches, so they are fetched again
	assert.Equal(t, fetches+1, env.matchRequests())
	assert.Empty(t, m.errMsg)

	assert.False(t, m.saving)
	assert.Equal(t, viewProfile, m.view)
	assert.Equal(t, "Profile updated", m.status)

	user := env.session.State().User
	require.NotNil(t, user)
	assert.Equal(t, "Lyon", user.City)
	assert.Equal(t, []string{"music", "yoga"}, user.InterestNames())

	stored, ok := env.backend.User(env.alice.ID)
	require.True(t, ok)
	assert.Equal(t, "Lyon", stored.City)
}

func TestMainLoop_ProfileEditValidation(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("e"))

	m.profileForm.setValue("age", "x")
	m.profileForm.setValue("email", "not-an-email")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, msgAgeNotNumber, m.profileForm.errors["age"])
	assert.NotEmpty(t, m.profileForm.errors["email"])
	assert.Equal(t, "Alice", env.session.State().User.Name)
}

func TestMainLoop_ProfileEditEmailTaken(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("e"))
	m.profileForm.setValue("email", env.bob.Email)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	assert.Equal(t, viewProfileEdit, m.view)
	assert.Equal(t, service.ErrEmailAlreadyRegistered.Error(), m.errMsg)
	assert.Equal(t, env.alice.Email, env.session.State().User.Email)
}

func TestMainLoop_Logout(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, cmd := press(t, m, runes("l"))
	assert.True(t, m.busy)

	next, quit := m.Update(cmd())
	m = next.(mainLoopModel)
	assert.True(t, m.logout)
	assert.NotNil(t, quit)
	assert.False(t, env.session.State().IsAuthenticated())
	assert.Empty(t, env.query.Snapshot().Matches)
}

func TestMainLoop_DeleteAccount(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.confirmDelete)
	assert.Contains(t, m.View(), "Delete your account?")

	m, _ = press(t, m, runes("n"))
	assert.False(t, m.confirmDelete)
	_, ok := env.backend.User(env.alice.ID)
	assert.True(t, ok)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd := press(t, m, runes("y"))
	m = run(t, m, cmd)

	assert.True(t, m.logout)
	_, ok = env.backend.User(env.alice.ID)
	assert.False(t, ok)
	assert.False(t, env.session.State().IsAuthenticated())
}

func TestMainLoop_FetchFailureShowsError(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	env.backend.FailNext(fmt.Sprintf("GET /users/%d/matches", env.alice.ID), 1)
	m, cmd := press(t, m, runes("r"))
	m = run(t, m, cmd)

	assert.NotEmpty(t, m.errMsg)
	assert.Contains(t, m.View(), "Bob")
}

func TestMainLoop_ProfileSavedButRefreshFails(t *testing.T) {
	env := newUIEnv(t)
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("e"))
	m.profileForm.setValue("city", "Lyon")

	env.backend.FailNext(fmt.Sprintf("GET /users/%d/matches", env.alice.ID), 1)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	assert.Equal(t, viewProfile, m.view)
	assert.Equal(t, "Profile updated", m.status)
	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, "Lyon", env.session.State().User.City)
	assert.Contains(t, m.viewMatches(), "Bob")
}

func TestMainLoop_DeleteAccountCleanupFailureIsShown(t *testing.T) {
	env := newUIEnvWithStorage(t, failingDeleteStorage(t))
	m := env.mounted(t)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd := press(t, m, runes("y"))

	next, quit := m.Update(cmd())
	m = next.(mainLoopModel)
	assert.Nil(t, quit)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Account deleted, but the saved session could not be removed")
	assert.True(t, m.logout)

	_, ok := env.backend.User(env.alice.ID)
	assert.False(t, ok)
	assert.False(t, env.session.State().IsAuthenticated())

	m, quit = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.overlay)
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit())
}

func TestMainLoop_LogoutCleanupFailureIsShown(t *testing.T) {
	env := newUIEnvWithStorage(t, failingDeleteStorage(t))
	m := env.mounted(t)

	m, cmd := press(t, m, runes("l"))
	next, quit := m.Update(cmd())
	m = next.(mainLoopModel)

	assert.Nil(t, quit)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Logged out, but the saved session could not be removed")
	assert.False(t, env.session.State().IsAuthenticated())

	_, quit = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, quit)
	assert.Equal(t, tea.QuitMsg{}, quit())
}
