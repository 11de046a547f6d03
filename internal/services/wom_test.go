package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleccaputo/sanguine-web/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func womTestClient(t *testing.T, h http.Handler) *WOMClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewWOMClient(&config.Config{
		WOMBaseURL: srv.URL,
		WOMAPIKey:  "test-key",
		WOMGroupID: 5,
	})
}

func TestGetGroupCompetitions(t *testing.T) {
	client := womTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/groups/5/competitions", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		fmt.Fprint(w, `[
			{"id":79514,"title":"Skill of the Week","metric":"ehp","startsAt":"2025-06-01T00:00:00Z","endsAt":"2025-06-08T00:00:00Z","participantCount":40},
			{"id":46594,"title":"Boss of the Week","metric":"zulrah","startsAt":"2025-05-01T00:00:00Z","endsAt":"2025-05-08T00:00:00Z","participantCount":25}
		]`)
	}))

	comps, err := client.GetGroupCompetitions(context.Background())
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, 79514, comps[0].ID)
	assert.Equal(t, "ehp", comps[0].Metric)
	assert.Equal(t, 25, comps[1].ParticipantCount)
}

func TestGetCompetitionDetails(t *testing.T) {
	client := womTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/competitions/79514", r.URL.Path)
		fmt.Fprint(w, `{
			"id":79514,"title":"Skill of the Week","metric":"ehp",
			"startsAt":"2025-06-01T00:00:00Z","endsAt":"2025-06-08T00:00:00Z",
			"participations":[
				{"player":{"displayName":"Alice"},"progress":{"start":100,"end":140,"gained":40}}
			]
		}`)
	}))

	comp, err := client.GetCompetitionDetails(context.Background(), 79514)
	require.NoError(t, err)
	assert.Equal(t, "Skill of the Week", comp.Title)
	require.Len(t, comp.Participations, 1)
	assert.Equal(t, "Alice", comp.Participations[0].Player.DisplayName)
	assert.Equal(t, 40.0, comp.Participations[0].Progress.Gained)
}

func TestGetCompetitionDetailsUpstreamError(t *testing.T) {
	client := womTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.GetCompetitionDetails(context.Background(), 1)
	assert.Error(t, err)
}

func TestGetGroupMembersUsesCache(t *testing.T) {
	hits := 0
	client := womTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/groups/5", r.URL.Path)
		hits++
		fmt.Fprint(w, `{"memberships":[
			{"playerId":1,"role":"leader","player":{"displayName":"Alice"}},
			{"playerId":2,"role":"member","player":{"displayName":"Bob"}}
		]}`)
	}))

	first, err := client.GetGroupMembers(context.Background())
	require.NoError(t, err)
	second, err := client.GetGroupMembers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	require.Len(t, first, 2)
	assert.Equal(t, "Alice", first[0].Player.DisplayName)
	assert.Equal(t, "leader", first[0].Role)
	assert.Equal(t, first, second)
}
