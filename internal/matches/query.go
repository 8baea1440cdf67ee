// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package matches holds the state of the match view: the active filters,
// the last loaded match list, the loading and error flags and the favorites
// the user marked in this process.
package matches

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-match-client/internal/app"
	"github.com/MKhiriev/go-match-client/internal/logger"
	"github.com/MKhiriev/go-match-client/internal/service"
	"github.com/MKhiriev/go-match-client/models"
)

// Snapshot is a copy of the query state for rendering.
type Snapshot struct {
	UserID     int64
	Filters    models.MatchFilters
	Matches    []models.User
	MatchCount int
	Loading    bool
	Err        string
	Favorites  []int64
}

// Query loads matches for one user. It is safe for concurrent use.
//
// Filter changes never fetch on their own; [Query.Fetch] applies them. When
// fetches overlap only the newest one may update the results.
type Query struct {
	mu sync.Mutex

	userID     int64
	filters    models.MatchFilters
	matches    []models.User
	matchCount int
	loading    bool
	err        string
	favorites  map[int64]struct{}

	// seq numbers fetches; a response whose number is not the latest is
	// dropped.
	seq uint64

	service service.ClientMatchService
	logger  *logger.Logger
}

// NewQuery returns a query with default filters and no user.
func NewQuery(matchService service.ClientMatchService, logger *logger.Logger) *Query {
	return &Query{
		filters:   models.DefaultMatchFilters(),
		favorites: make(map[int64]struct{}),
		service:   matchService,
		logger:    logger.Component("matches"),
	}
}

// Mount attaches the query to user and loads the first page of matches.
// A nil user detaches it without fetching.
func (q *Query) Mount(ctx context.Context, user *models.User) error {
	q.mu.Lock()
	q.setUserLocked(user)
	q.mu.Unlock()

	return q.Fetch(ctx)
}

// SetUser fetches only when the user identity changes. Results and
// favorites of the previous user are dropped.
func (q *Query) SetUser(ctx context.Context, user *models.User) error {
	q.mu.Lock()
	id := userID(user)
	if id == q.userID {
		q.mu.Unlock()
		return nil
	}
	q.setUserLocked(user)
	q.mu.Unlock()

	return q.Fetch(ctx)
}

func (q *Query) setUserLocked(user *models.User) {
	id := userID(user)
	if id != q.userID {
		q.matches = nil
		q.matchCount = 0
		q.err = ""
		q.favorites = make(map[int64]struct{})
		// responses for the previous user must not land
		q.seq++
		q.loading = false
	}
	q.userID = id
}

// Fetch loads matches with the current filters. Without a user it does
// nothing. On failure the previous results are kept and the error message
// is set.
func (q *Query) Fetch(ctx context.Context) error {
	q.mu.Lock()
	if q.userID == 0 {
		q.mu.Unlock()
		return nil
	}
	q.seq++
	seq := q.seq
	id := q.userID
	filters := q.filters.Clone()
	q.loading = true
	q.err = ""
	q.mu.Unlock()

	resp, err := q.service.GetMatches(ctx, id, filters)

	q.mu.Lock()
	defer q.mu.Unlock()

	if seq != q.seq {
		q.logger.Debug().Uint64("seq", seq).Uint64("latest", q.seq).Msg("dropping stale match response")
		return nil
	}

	q.loading = false
	if err != nil {
		q.logger.Err(err).Int64("user_id", id).Msg("failed to fetch matches")
		q.err = app.MsgFetchMatchesFailed
		return err
	}

	q.matches = resp.Matches
	q.matchCount = resp.MatchCount
	return nil
}

// SetFilters replaces the filters without fetching.
func (q *Query) SetFilters(filters models.MatchFilters) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.filters = filters.Clone()
}

// Filters returns a copy of the current filters.
func (q *Query) Filters() models.MatchFilters {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.filters.Clone()
}

// Reset restores the default filters without fetching.
func (q *Query) Reset() {
	q.SetFilters(models.DefaultMatchFilters())
}

// ToggleFavorite flips the favorite mark of a match and reports whether it
// is now set.
func (q *Query) ToggleFavorite(matchID int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.favorites[matchID]; ok {
		delete(q.favorites, matchID)
		return false
	}
	q.favorites[matchID] = struct{}{}
	return true
}

// IsFavorite reports whether matchID is marked.
func (q *Query) IsFavorite(matchID int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.favorites[matchID]
	return ok
}

// Snapshot returns a copy of the whole state.
func (q *Query) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	return Snapshot{
		UserID:     q.userID,
		Filters:    q.filters.Clone(),
		Matches:    slices.Clone(q.matches),
		MatchCount: q.matchCount,
		Loading:    q.loading,
		Err:        q.err,
		Favorites:  slices.Sorted(maps.Keys(q.favorites)),
	}
}

func userID(user *models.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
