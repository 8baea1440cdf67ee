// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/go-match-client/models"
	"github.com/stretchr/testify/assert"
)

var (
	alice = models.User{ID: 1, Name: "Alice", Email: "alice@example.com", Interests: []models.Interest{{ID: 1, Name: "music"}}}
	bob   = models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}
)

func stateOf(status Status) State {
	switch status {
	case StatusAuthenticated:
		return authenticated("tok", alice)
	case StatusError:
		return State{Status: StatusError, Err: "boom"}
	default:
		return State{Status: status}
	}
}

func TestReduce_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		action Action
		want   State
	}{
		{"request from anonymous", stateOf(StatusAnonymous), ActionRequest{}, State{Status: StatusPending}},
		{"request clears error", stateOf(StatusError), ActionRequest{}, State{Status: StatusPending}},
		{"request while pending", stateOf(StatusPending), ActionRequest{}, State{Status: StatusPending}},
		{"request while authenticated", stateOf(StatusAuthenticated), ActionRequest{}, stateOf(StatusAuthenticated)},

		{"success from pending", stateOf(StatusPending), ActionSuccess{Token: "t2", User: bob}, authenticated("t2", bob)},
		{"last success wins", stateOf(StatusAuthenticated), ActionSuccess{Token: "t2", User: bob}, authenticated("t2", bob)},
		{"success from anonymous", stateOf(StatusAnonymous), ActionSuccess{Token: "t2", User: bob}, stateOf(StatusAnonymous)},
		{"success from error", stateOf(StatusError), ActionSuccess{Token: "t2", User: bob}, authenticated("t2", bob)},

		{"failure from pending", stateOf(StatusPending), ActionFailure{Err: "nope"}, State{Status: StatusError, Err: "nope"}},
		{"failure while authenticated", stateOf(StatusAuthenticated), ActionFailure{Err: "nope"}, stateOf(StatusAuthenticated)},
		{"failure from anonymous", stateOf(StatusAnonymous), ActionFailure{Err: "nope"}, stateOf(StatusAnonymous)},

		{"update user", stateOf(StatusAuthenticated), ActionUpdateUser{User: bob}, authenticated("tok", bob)},
		{"update user anonymous", stateOf(StatusAnonymous), ActionUpdateUser{User: bob}, stateOf(StatusAnonymous)},
		{"update user pending", stateOf(StatusPending), ActionUpdateUser{User: bob}, stateOf(StatusPending)},

		{"logout", stateOf(StatusAuthenticated), ActionLogout{}, State{Status: StatusAnonymous}},
		{"logout anonymous", stateOf(StatusAnonymous), ActionLogout{}, stateOf(StatusAnonymous)},
		{"logout error", stateOf(StatusError), ActionLogout{}, stateOf(StatusError)},

		{"restore at start", stateOf(StatusAnonymous), ActionRestore{Token: "t", User: bob}, authenticated("t", bob)},
		{"restore while authenticated", stateOf(StatusAuthenticated), ActionRestore{Token: "t", User: bob}, stateOf(StatusAuthenticated)},
		{"restore while pending", stateOf(StatusPending), ActionRestore{Token: "t", User: bob}, stateOf(StatusPending)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.from, tt.action))
		})
	}
}

func TestReduce_DoesNotAliasUser(t *testing.T) {
	user := alice
	user.Interests = []models.Interest{{ID: 1, Name: "music"}}

	next := Reduce(State{Status: StatusPending}, ActionSuccess{Token: "t", User: user})
	user.Interests[0].Name = "changed"
	user.Name = "changed"

	assert.Equal(t, "Alice", next.User.Name)
	assert.Equal(t, "music", next.User.Interests[0].Name)
}

func TestReduce_AuthenticatedIffUserAndToken(t *testing.T) {
	actions := []Action{
		ActionRequest{},
		ActionSuccess{Token: "t1", User: alice},
		ActionSuccess{Token: "t2", User: bob},
		ActionFailure{Err: "x"},
		ActionUpdateUser{User: bob},
		ActionLogout{},
		ActionRestore{Token: "t3", User: alice},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	state := State{Status: StatusAnonymous}

	for i := 0; i < 5000; i++ {
		state = Reduce(state, actions[rng.IntN(len(actions))])

		hasPair := state.User != nil && state.Token != ""
		assert.Equal(t, state.IsAuthenticated(), hasPair, "step %d: %+v", i, state)
		assert.Equal(t, state.Status == StatusPending, state.Loading())
		if state.Status != StatusError {
			assert.Empty(t, state.Err)
		}
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ANONYMOUS", StatusAnonymous.String())
	assert.Equal(t, "PENDING", StatusPending.String())
	assert.Equal(t, "AUTHENTICATED", StatusAuthenticated.String())
	assert.Equal(t, "ERROR", StatusError.String())
	assert.Equal(t, "UNKNOWN", Status(42).String())
}
